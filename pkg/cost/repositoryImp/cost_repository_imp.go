package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/cost/repository"
)

type costRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CostRepository { return &costRepo{db: db} }

func (r *costRepo) Create(ctx context.Context, c *entities.CostEntry) error {
	return apperr.FromStore(r.db.WithContext(ctx).Create(c).Error, "Cost entry not found")
}

func (r *costRepo) List(ctx context.Context, f repository.Filter) ([]entities.CostEntry, error) {
	q := r.db.WithContext(ctx).Model(&entities.CostEntry{})
	if f.PlantingID != nil {
		q = q.Where("planting_id = ?", *f.PlantingID)
	}
	if f.NurseryID != nil {
		q = q.Where("nursery_id = ?", *f.NurseryID)
	}
	if f.From != nil {
		q = q.Where("transaction_date >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("transaction_date <= ?", f.To.UTC())
	}
	list := []entities.CostEntry{}
	if err := q.Order("transaction_date DESC, id DESC").Find(&list).Error; err != nil {
		return nil, apperr.FromStore(err, "")
	}
	return list, nil
}
