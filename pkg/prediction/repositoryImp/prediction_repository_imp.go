package repositoryImp

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/prediction/repository"
)

type predictionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PredictionRepository { return &predictionRepo{db: db} }

func (r *predictionRepo) Latest(ctx context.Context, plantingID uint) (*entities.Prediction, error) {
	var p entities.Prediction
	err := r.db.WithContext(ctx).
		Where("planting_id = ?", plantingID).
		Order("prediction_date DESC, id DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	return &p, nil
}

func (r *predictionRepo) Create(ctx context.Context, p *entities.Prediction) error {
	return apperr.FromStore(r.db.WithContext(ctx).Create(p).Error, "")
}

func (r *predictionRepo) LatestPerPlanting(ctx context.Context, since time.Time, siteID *uint) ([]entities.Prediction, error) {
	q := r.db.WithContext(ctx).
		Table("predictions AS pr").
		Select("pr.*").
		Where("pr.prediction_date >= ?", since.UTC())
	if siteID != nil {
		q = q.Joins("JOIN planting_records p ON p.id = pr.planting_id").
			Where("p.site_id = ?", *siteID)
	}
	var all []entities.Prediction
	if err := q.Order("pr.planting_id ASC, pr.prediction_date DESC, pr.id DESC").Scan(&all).Error; err != nil {
		return nil, apperr.FromStore(err, "")
	}
	out := []entities.Prediction{}
	for i, p := range all {
		if i == 0 || all[i-1].PlantingID != p.PlantingID {
			out = append(out, p)
		}
	}
	return out, nil
}
