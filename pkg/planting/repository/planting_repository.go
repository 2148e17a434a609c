package repository

import (
	"context"

	"msitumum/entities"
)

// PlantingView is a planting with the names a list screen needs.
type PlantingView struct {
	entities.PlantingRecord
	SiteName       string `json:"site_name"`
	SpeciesName    string `json:"species_name"`
	ScientificName string `json:"scientific_name,omitempty"`
	FarmerName     string `json:"farmer_name"`
	FarmerPhone    string `json:"farmer_phone,omitempty"`
}

type Filter struct {
	SiteID    *uint
	SpeciesID *uint
}

type PlantingRepository interface {
	Create(ctx context.Context, p *entities.PlantingRecord) error
	FindByID(ctx context.Context, id uint) (*entities.PlantingRecord, error)
	View(ctx context.Context, id uint) (*PlantingView, error)
	List(ctx context.Context, f Filter) ([]PlantingView, error)
	UpdateOwned(ctx context.Context, id, uid uint, updates map[string]any) error
}
