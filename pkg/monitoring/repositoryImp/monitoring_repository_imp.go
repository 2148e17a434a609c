package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/monitoring/repository"
	"msitumum/pkg/store"
)

const monitoringNotFound = "Monitoring record not found"

type monitoringRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MonitoringRepository { return &monitoringRepo{db} }

func (r *monitoringRepo) Create(ctx context.Context, m *entities.MonitoringRecord) error {
	return apperr.FromStore(r.db.WithContext(ctx).Create(m).Error, monitoringNotFound)
}

func (r *monitoringRepo) FindByID(ctx context.Context, id uint) (*entities.MonitoringRecord, error) {
	var m entities.MonitoringRecord
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, apperr.FromStore(err, monitoringNotFound)
	}
	return &m, nil
}

func (r *monitoringRepo) ListByPlanting(ctx context.Context, plantingID uint) ([]repository.MonitoringView, error) {
	out := []repository.MonitoringView{}
	err := r.db.WithContext(ctx).
		Table("monitoring_records AS m").
		Select("m.*, u.full_name AS observer_name").
		Joins("LEFT JOIN users u ON u.id = m.user_id").
		Where("m.planting_id = ?", plantingID).
		Order("m.monitoring_date ASC, m.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, apperr.FromStore(err, monitoringNotFound)
	}
	return out, nil
}

func (r *monitoringRepo) UpdateOwned(ctx context.Context, id, uid uint, updates map[string]any) error {
	return store.UpdateOwned(ctx, r.db, &entities.MonitoringRecord{}, id, uid, updates, monitoringNotFound)
}
