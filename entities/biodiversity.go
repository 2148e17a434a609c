package entities

import "time"

const (
	ObservationBaseline = "baseline"
	ObservationFollowUp = "follow_up"
)

type BiodiversityRecord struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	SiteID                 uint      `gorm:"index;not null" json:"site_id"`
	UserID                 uint      `gorm:"index;not null" json:"user_id"`
	ObservationDate        time.Time `json:"observation_date"`
	ObservationType        string    `gorm:"not null" json:"observation_type"`
	BirdSpeciesCount       *int      `json:"bird_species_count"`
	PollinatorSpeciesCount *int      `json:"pollinator_species_count"`
	PlantSpeciesCount      *int      `json:"plant_species_count"`
	WildlifeSightings      string    `json:"wildlife_sightings"`
	CanopyCoverPercent     *float64  `json:"canopy_cover_percent"`
	QuadratSamplingData    string    `json:"quadrat_sampling_data"`
	SpeciesRichnessIndex   *float64  `json:"species_richness_index"`
	PhotoURL               string    `json:"photo_url"`
	Notes                  string    `json:"notes"`
	CreatedAt              time.Time `json:"created_at"`

	Site *PlantingSite `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

func (BiodiversityRecord) TableName() string { return "biodiversity_records" }
