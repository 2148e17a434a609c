package entities

import "time"

const (
	StageSowing      = "sowing"
	StageGermination = "germination"
	StageHardening   = "hardening"
	StageReady       = "ready"
)

type Nursery struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	UserID                uint      `gorm:"index;not null" json:"user_id"`
	NurseryName           string    `gorm:"not null" json:"nursery_name"`
	LocationName          string    `json:"location_name"`
	Latitude              *float64  `json:"latitude"`
	Longitude             *float64  `json:"longitude"`
	TotalCapacity         int       `json:"total_capacity"`
	TotalBeds             int       `json:"total_beds"`
	SoilMixSandPercent    *float64  `json:"soil_mix_sand_percent"`
	SoilMixLoamPercent    *float64  `json:"soil_mix_loam_percent"`
	SoilMixCompostPercent *float64  `json:"soil_mix_compost_percent"`
	WateringSchedule      string    `json:"watering_schedule"`
	ManagerName           string    `json:"manager_name"`
	ManagerPhone          string    `json:"manager_phone"`
	CreatedAt             time.Time `json:"created_at"`
}

func (Nursery) TableName() string { return "nurseries" }

type NurseryInventory struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	NurseryID         uint       `gorm:"index;not null" json:"nursery_id"`
	SpeciesID         uint       `gorm:"index;not null" json:"species_id"`
	CurrentCount      int        `json:"current_count"`
	SowingDate        *time.Time `json:"sowing_date"`
	GerminationRate   *float64   `json:"germination_rate"`
	SeedlingStage     string     `gorm:"default:sowing" json:"seedling_stage"`
	ExpectedReadyDate *time.Time `gorm:"index" json:"expected_ready_date"`
	BedNumber         string     `json:"bed_number"`
	DiseaseNotes      string     `json:"disease_notes"`
	PestNotes         string     `json:"pest_notes"`
	PhotoURL          string     `json:"photo_url"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (NurseryInventory) TableName() string { return "nursery_inventory" }
