package database

import (
	"gorm.io/gorm"

	"msitumum/entities"
)

func height(m float64) *float64 { return &m }

// DefaultSpecies is the catalog a fresh database starts with.
var DefaultSpecies = []entities.TreeSpecies{
	{CommonName: "Acacia", ScientificName: "Acacia mearnsii", Native: true, GrowthRate: "fast", MatureHeightMeters: height(15), Description: "Nitrogen-fixing, good for soil improvement"},
	{CommonName: "Teak", ScientificName: "Tectona grandis", Native: false, GrowthRate: "medium", MatureHeightMeters: height(30), Description: "Valuable timber species"},
	{CommonName: "Oak", ScientificName: "Quercus robur", Native: true, GrowthRate: "slow", MatureHeightMeters: height(25), Description: "Long-lived hardwood"},
	{CommonName: "Mahogany", ScientificName: "Swietenia macrophylla", Native: false, GrowthRate: "medium", MatureHeightMeters: height(35), Description: "Premium hardwood"},
	{CommonName: "Eucalyptus", ScientificName: "Eucalyptus globulus", Native: false, GrowthRate: "fast", MatureHeightMeters: height(40), Description: "Fast-growing, high water use"},
	{CommonName: "Cedar", ScientificName: "Cedrus deodara", Native: true, GrowthRate: "medium", MatureHeightMeters: height(50), Description: "Aromatic timber"},
	{CommonName: "Pine", ScientificName: "Pinus patula", Native: false, GrowthRate: "fast", MatureHeightMeters: height(30), Description: "Softwood for construction"},
	{CommonName: "Grevillea", ScientificName: "Grevillea robusta", Native: false, GrowthRate: "fast", MatureHeightMeters: height(20), Description: "Agroforestry species"},
	{CommonName: "Moringa", ScientificName: "Moringa oleifera", Native: true, GrowthRate: "fast", MatureHeightMeters: height(10), Description: "Nutritious leaves, drought tolerant"},
	{CommonName: "Mango", ScientificName: "Mangifera indica", Native: true, GrowthRate: "medium", MatureHeightMeters: height(15), Description: "Fruit tree"},
}

// SeedSpecies inserts the default catalog into an empty tree_species table.
func SeedSpecies(db *gorm.DB) error {
	var n int64
	if err := db.Model(&entities.TreeSpecies{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	rows := make([]entities.TreeSpecies, len(DefaultSpecies))
	copy(rows, DefaultSpecies)
	return db.Create(&rows).Error
}
