package entities

import "time"

type PlantingSite struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	SiteName     string    `gorm:"not null" json:"site_name"`
	LocationName string    `json:"location_name"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	AreaHectares *float64  `json:"area_hectares"`
	SoilType     string    `json:"soil_type"`
	ClimateZone  string    `json:"climate_zone"` // dry|humid|highland...
	CreatedAt    time.Time `json:"created_at"`
}

func (PlantingSite) TableName() string { return "planting_sites" }

type TreeSpecies struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CommonName         string    `gorm:"not null" json:"common_name"`
	ScientificName     string    `json:"scientific_name"`
	Native             bool      `json:"native"`
	GrowthRate         string    `json:"growth_rate"` // slow|medium|fast
	MatureHeightMeters *float64  `json:"mature_height_meters"`
	Description        string    `json:"description"`
	CreatedAt          time.Time `json:"created_at"`
}

func (TreeSpecies) TableName() string { return "tree_species" }
