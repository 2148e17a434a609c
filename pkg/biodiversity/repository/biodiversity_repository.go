package repository

import (
	"context"

	"msitumum/entities"
)

type ObservationView struct {
	entities.BiodiversityRecord
	ObserverName string `json:"observer_name"`
}

type BiodiversityRepository interface {
	Create(ctx context.Context, b *entities.BiodiversityRecord) error
	ListBySite(ctx context.Context, siteID uint) ([]ObservationView, error)
	// EarliestOf and LatestOf return nil, nil when the site has no record of that type.
	EarliestOf(ctx context.Context, siteID uint, observationType string) (*entities.BiodiversityRecord, error)
	LatestOf(ctx context.Context, siteID uint, observationType string) (*entities.BiodiversityRecord, error)
}
