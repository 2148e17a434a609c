package entities

import "time"

const (
	InitialHealthy  = "healthy"
	InitialStressed = "stressed"
)

const (
	HealthHealthy       = "healthy"
	HealthPests         = "pests"
	HealthDroughtStress = "drought_stress"
	HealthDisease       = "disease"
)

type PlantingRecord struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	SiteID           uint      `gorm:"index;not null" json:"site_id"`
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	SpeciesID        uint      `gorm:"index;not null" json:"species_id"`
	SeedlingsPlanted int       `gorm:"not null" json:"seedlings_planted"`
	PlantingDate     time.Time `json:"planting_date"`
	PlantingMethod   string    `json:"planting_method"`
	PitSizeCM        *float64  `gorm:"column:pit_size_cm" json:"pit_size_cm"`
	SpacingMeters    *float64  `json:"spacing_meters"`
	Mulching         bool      `json:"mulching"`
	SoilCondition    string    `json:"soil_condition"`
	SoilMoisture     string    `json:"soil_moisture"` // dry|moist|wet
	SoilPH           *float64  `gorm:"column:soil_ph" json:"soil_ph"`
	InitialHealth    string    `gorm:"default:healthy" json:"initial_health"`
	PhotoURL         string    `json:"photo_url"`
	GPSAccuracy      *float64  `gorm:"column:gps_accuracy" json:"gps_accuracy"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`

	Site    *PlantingSite `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Species *TreeSpecies  `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

func (PlantingRecord) TableName() string { return "planting_records" }

type MonitoringRecord struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	PlantingID            uint      `gorm:"index;not null" json:"planting_id"`
	UserID                uint      `gorm:"index;not null" json:"user_id"`
	MonitoringDate        time.Time `gorm:"index" json:"monitoring_date"`
	SurvivalCount         int       `json:"survival_count"`
	AverageHeightCM       *float64  `gorm:"column:average_height_cm" json:"average_height_cm"`
	AverageCanopyCM       *float64  `gorm:"column:average_canopy_cm" json:"average_canopy_cm"`
	HealthStatus          string    `json:"health_status"`
	MortalityCause        *string   `json:"mortality_cause"`
	RainfallMM            *float64  `gorm:"column:rainfall_mm" json:"rainfall_mm"`
	MaintenanceActivities string    `json:"maintenance_activities"`
	PhotoURL              string    `json:"photo_url"`
	Notes                 string    `json:"notes"`
	CreatedAt             time.Time `json:"created_at"`

	Planting *PlantingRecord `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

func (MonitoringRecord) TableName() string { return "monitoring_records" }
