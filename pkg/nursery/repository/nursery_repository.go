package repository

import (
	"context"
	"time"

	"msitumum/entities"
)

type NurserySummary struct {
	entities.Nursery
	OwnerName      string `json:"owner_name"`
	Organization   string `json:"organization"`
	OwnerPhone     string `json:"phone,omitempty"`
	SpeciesCount   int64  `json:"species_count"`
	TotalSeedlings int64  `json:"total_seedlings"`
}

type InventoryView struct {
	entities.NurseryInventory
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name"`
	GrowthRate     string `json:"growth_rate,omitempty"`
}

type NurseryRepository interface {
	Create(ctx context.Context, n *entities.Nursery) error
	FindByID(ctx context.Context, id uint) (*entities.Nursery, error)
	Get(ctx context.Context, id uint) (*NurserySummary, error)
	List(ctx context.Context) ([]NurserySummary, error)

	AddInventory(ctx context.Context, item *entities.NurseryInventory) error
	Inventory(ctx context.Context, nurseryID uint) ([]InventoryView, error)
	// UpdateInventoryOwned changes an item only if its nursery belongs to uid.
	UpdateInventoryOwned(ctx context.Context, id, uid uint, updates map[string]any) error
	// Forecast lists items not yet ready whose expected ready date is on or before until.
	Forecast(ctx context.Context, nurseryID uint, until time.Time) ([]InventoryView, error)
}
