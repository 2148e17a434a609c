package service

import (
	"context"

	"msitumum/entities"
	"msitumum/pkg/biodiversity/repository"
)

// Improvement is follow-up minus baseline. A field is nil when either side did not record it.
type Improvement struct {
	BirdSpecies       *int     `json:"bird_species"`
	PollinatorSpecies *int     `json:"pollinator_species"`
	PlantSpecies      *int     `json:"plant_species"`
	CanopyCover       *float64 `json:"canopy_cover"`
	RichnessIndex     *float64 `json:"richness_index"`
}

type Comparison struct {
	Baseline    *entities.BiodiversityRecord `json:"baseline"`
	Latest      *entities.BiodiversityRecord `json:"latest"`
	Improvement *Improvement                 `json:"improvement"`
}

type BiodiversityService interface {
	Create(ctx context.Context, b *entities.BiodiversityRecord) error
	ListBySite(ctx context.Context, siteID uint) ([]repository.ObservationView, error)
	Compare(ctx context.Context, siteID uint) (*Comparison, error)
}
