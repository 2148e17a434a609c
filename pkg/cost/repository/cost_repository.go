package repository

import (
	"context"
	"time"

	"msitumum/entities"
)

type Filter struct {
	PlantingID *uint
	NurseryID  *uint
	From, To   *time.Time
}

type CostRepository interface {
	Create(ctx context.Context, c *entities.CostEntry) error
	List(ctx context.Context, f Filter) ([]entities.CostEntry, error)
}
