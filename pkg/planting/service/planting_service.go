package service

import (
	"context"

	"msitumum/entities"
	monrepo "msitumum/pkg/monitoring/repository"
	"msitumum/pkg/planting/repository"
)

// PlantingDetail is a planting with its full monitoring history.
type PlantingDetail struct {
	repository.PlantingView
	Monitoring          []monrepo.MonitoringView `json:"monitoring"`
	CurrentSurvivalRate float64                  `json:"current_survival_rate"`
}

// PlantingPatch holds the fields an owner may change after planting.
type PlantingPatch struct {
	PlantingMethod *string  `json:"planting_method"`
	PitSizeCM      *float64 `json:"pit_size_cm" validate:"omitempty,gte=0"`
	SpacingMeters  *float64 `json:"spacing_meters" validate:"omitempty,gte=0"`
	Mulching       *bool    `json:"mulching"`
	SoilCondition  *string  `json:"soil_condition"`
	SoilMoisture   *string  `json:"soil_moisture"`
	SoilPH         *float64 `json:"soil_ph" validate:"omitempty,gte=0,lte=14"`
	Notes          *string  `json:"notes"`
}

type PlantingService interface {
	Create(ctx context.Context, p *entities.PlantingRecord) error
	Get(ctx context.Context, id uint) (*PlantingDetail, error)
	List(ctx context.Context, f repository.Filter) ([]repository.PlantingView, error)
	Update(ctx context.Context, id, uid uint, patch PlantingPatch) error
}
