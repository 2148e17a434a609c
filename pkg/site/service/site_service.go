package service

import (
	"context"

	"msitumum/entities"
	"msitumum/pkg/site/repository"
)

type SiteService interface {
	List(ctx context.Context) ([]repository.SiteSummary, error)
	Get(ctx context.Context, id uint) (*repository.SiteSummary, error)
	Create(ctx context.Context, s *entities.PlantingSite) error
	// Update and Delete only touch sites owned by uid; anything else is NotFound.
	Update(ctx context.Context, id, uid uint, updates map[string]any) error
	Delete(ctx context.Context, id, uid uint) error
}
