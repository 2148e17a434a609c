package repository

import (
	"context"

	"msitumum/entities"
)

type MonitoringView struct {
	entities.MonitoringRecord
	ObserverName string `json:"observer_name"`
}

type MonitoringRepository interface {
	Create(ctx context.Context, m *entities.MonitoringRecord) error
	FindByID(ctx context.Context, id uint) (*entities.MonitoringRecord, error)
	// ListByPlanting returns the history oldest first; same-day visits keep insertion order.
	ListByPlanting(ctx context.Context, plantingID uint) ([]MonitoringView, error)
	UpdateOwned(ctx context.Context, id, uid uint, updates map[string]any) error
}
