package service

import (
	"context"

	"msitumum/entities"
	"msitumum/pkg/nursery/repository"
)

type NurseryDetail struct {
	repository.NurserySummary
	Inventory           []repository.InventoryView `json:"inventory"`
	CapacityUtilization float64                    `json:"capacity_utilization"`
}

// InventoryPatch moves stock along the pipeline. Stage order is not enforced.
type InventoryPatch struct {
	CurrentCount      *int     `json:"current_count" validate:"omitempty,gte=0"`
	GerminationRate   *float64 `json:"germination_rate" validate:"omitempty,gte=0,lte=100"`
	SeedlingStage     *string  `json:"seedling_stage" validate:"omitempty,oneof=sowing germination hardening ready"`
	ExpectedReadyDate *string  `json:"expected_ready_date"`
	BedNumber         *string  `json:"bed_number"`
	DiseaseNotes      *string  `json:"disease_notes"`
	PestNotes         *string  `json:"pest_notes"`
}

type NurseryService interface {
	Create(ctx context.Context, n *entities.Nursery) error
	List(ctx context.Context) ([]repository.NurserySummary, error)
	Get(ctx context.Context, id uint) (*NurseryDetail, error)
	AddInventory(ctx context.Context, uid uint, item *entities.NurseryInventory) error
	UpdateInventory(ctx context.Context, id, uid uint, patch InventoryPatch) error
	Forecast(ctx context.Context, nurseryID uint, months int) ([]repository.InventoryView, error)
}
