package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/planting/repository"
	"msitumum/pkg/store"
)

const plantingNotFound = "Planting record not found"

type plantingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantingRepository { return &plantingRepo{db} }

func (r *plantingRepo) Create(ctx context.Context, p *entities.PlantingRecord) error {
	return apperr.FromStore(r.db.WithContext(ctx).Create(p).Error, plantingNotFound)
}

func (r *plantingRepo) FindByID(ctx context.Context, id uint) (*entities.PlantingRecord, error) {
	var p entities.PlantingRecord
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, apperr.FromStore(err, plantingNotFound)
	}
	return &p, nil
}

func (r *plantingRepo) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("planting_records AS p").
		Select(`p.*, s.site_name AS site_name, sp.common_name AS species_name,
			sp.scientific_name AS scientific_name, u.full_name AS farmer_name, u.phone AS farmer_phone`).
		Joins("LEFT JOIN planting_sites s ON s.id = p.site_id").
		Joins("LEFT JOIN tree_species sp ON sp.id = p.species_id").
		Joins("LEFT JOIN users u ON u.id = p.user_id")
}

func (r *plantingRepo) View(ctx context.Context, id uint) (*repository.PlantingView, error) {
	var out []repository.PlantingView
	if err := r.views(ctx).Where("p.id = ?", id).Limit(1).Scan(&out).Error; err != nil {
		return nil, apperr.FromStore(err, plantingNotFound)
	}
	if len(out) == 0 {
		return nil, apperr.NotFound(plantingNotFound)
	}
	return &out[0], nil
}

func (r *plantingRepo) List(ctx context.Context, f repository.Filter) ([]repository.PlantingView, error) {
	q := r.views(ctx)
	if f.SiteID != nil {
		q = q.Where("p.site_id = ?", *f.SiteID)
	}
	if f.SpeciesID != nil {
		q = q.Where("p.species_id = ?", *f.SpeciesID)
	}
	out := []repository.PlantingView{}
	if err := q.Order("p.planting_date DESC, p.id DESC").Scan(&out).Error; err != nil {
		return nil, apperr.FromStore(err, plantingNotFound)
	}
	for i := range out {
		out[i].ScientificName = ""
		out[i].FarmerPhone = ""
	}
	return out, nil
}

func (r *plantingRepo) UpdateOwned(ctx context.Context, id, uid uint, updates map[string]any) error {
	return store.UpdateOwned(ctx, r.db, &entities.PlantingRecord{}, id, uid, updates, plantingNotFound)
}
