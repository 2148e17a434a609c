package service

import (
	"context"

	"msitumum/entities"
	"msitumum/pkg/monitoring/repository"
)

type MonitoringPatch struct {
	SurvivalCount         *int     `json:"survival_count" validate:"omitempty,gte=0"`
	AverageHeightCM       *float64 `json:"average_height_cm" validate:"omitempty,gte=0"`
	AverageCanopyCM       *float64 `json:"average_canopy_cm" validate:"omitempty,gte=0"`
	HealthStatus          *string  `json:"health_status" validate:"omitempty,oneof=healthy pests drought_stress disease"`
	MortalityCause        *string  `json:"mortality_cause"`
	RainfallMM            *float64 `json:"rainfall_mm" validate:"omitempty,gte=0"`
	MaintenanceActivities *string  `json:"maintenance_activities"`
	Notes                 *string  `json:"notes"`
}

type MonitoringService interface {
	Create(ctx context.Context, m *entities.MonitoringRecord) error
	ListByPlanting(ctx context.Context, plantingID uint) ([]repository.MonitoringView, error)
	Update(ctx context.Context, id, uid uint, patch MonitoringPatch) error
}
