package service

import (
	"context"

	"msitumum/entities"
	"msitumum/pkg/cost/repository"
)

type CostService interface {
	Create(ctx context.Context, c *entities.CostEntry) error
	List(ctx context.Context, f repository.Filter) ([]entities.CostEntry, error)
}
