package repository

import (
	"context"

	"msitumum/entities"
)

// SiteSummary is a site row with its owner and planting count.
type SiteSummary struct {
	entities.PlantingSite
	OwnerName      string `json:"owner_name"`
	Organization   string `json:"organization"`
	OwnerPhone     string `json:"phone,omitempty"`
	TotalPlantings int64  `json:"total_plantings"`
}

type SiteRepository interface {
	Create(ctx context.Context, s *entities.PlantingSite) error
	FindByID(ctx context.Context, id uint) (*entities.PlantingSite, error)
	Get(ctx context.Context, id uint) (*SiteSummary, error)
	List(ctx context.Context) ([]SiteSummary, error)
	UpdateOwned(ctx context.Context, id, uid uint, updates map[string]any) error
	DeleteOwned(ctx context.Context, id, uid uint) error
}
