package repository

import (
	"context"

	"msitumum/entities"
)

type SpeciesRepository interface {
	List(ctx context.Context) ([]entities.TreeSpecies, error)
	FindByID(ctx context.Context, id uint) (*entities.TreeSpecies, error)
	// Upsert inserts s, or updates the row with the same common name.
	Upsert(ctx context.Context, s *entities.TreeSpecies) (created bool, err error)
}
