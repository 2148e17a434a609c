package service

import (
	"context"

	"msitumum/entities"
)

type SpeciesService interface {
	List(ctx context.Context) ([]entities.TreeSpecies, error)
	Get(ctx context.Context, id uint) (*entities.TreeSpecies, error)
	Import(ctx context.Context, rows []entities.TreeSpecies) (created, updated int, err error)
}
