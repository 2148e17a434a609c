package repository

import (
	"context"
	"time"

	"msitumum/entities"
)

type PredictionRepository interface {
	// Latest returns nil without error when the planting has no snapshot yet.
	Latest(ctx context.Context, plantingID uint) (*entities.Prediction, error)
	Create(ctx context.Context, p *entities.Prediction) error
	// LatestPerPlanting keeps the newest snapshot of each planting computed at or after since.
	LatestPerPlanting(ctx context.Context, since time.Time, siteID *uint) ([]entities.Prediction, error)
}
