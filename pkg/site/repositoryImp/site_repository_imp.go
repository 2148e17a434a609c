package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/site/repository"
	"msitumum/pkg/store"
)

const (
	siteNotFound = "Site not found"
	siteInUse    = "Site has plantings or biodiversity records and cannot be deleted"
)

type siteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SiteRepository { return &siteRepo{db} }

func (r *siteRepo) Create(ctx context.Context, s *entities.PlantingSite) error {
	return apperr.FromStore(r.db.WithContext(ctx).Create(s).Error, siteNotFound)
}

func (r *siteRepo) FindByID(ctx context.Context, id uint) (*entities.PlantingSite, error) {
	var s entities.PlantingSite
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, apperr.FromStore(err, siteNotFound)
	}
	return &s, nil
}

func (r *siteRepo) summaries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("planting_sites AS s").
		Select(`s.*, u.full_name AS owner_name, u.organization AS organization, u.phone AS owner_phone,
			(SELECT COUNT(*) FROM planting_records p WHERE p.site_id = s.id) AS total_plantings`).
		Joins("LEFT JOIN users u ON u.id = s.user_id")
}

func (r *siteRepo) Get(ctx context.Context, id uint) (*repository.SiteSummary, error) {
	var out []repository.SiteSummary
	if err := r.summaries(ctx).Where("s.id = ?", id).Limit(1).Scan(&out).Error; err != nil {
		return nil, apperr.FromStore(err, siteNotFound)
	}
	if len(out) == 0 {
		return nil, apperr.NotFound(siteNotFound)
	}
	return &out[0], nil
}

func (r *siteRepo) List(ctx context.Context) ([]repository.SiteSummary, error) {
	out := []repository.SiteSummary{}
	if err := r.summaries(ctx).Order("s.created_at DESC, s.id DESC").Scan(&out).Error; err != nil {
		return nil, apperr.FromStore(err, siteNotFound)
	}
	for i := range out {
		out[i].OwnerPhone = ""
	}
	return out, nil
}

func (r *siteRepo) UpdateOwned(ctx context.Context, id, uid uint, updates map[string]any) error {
	return store.UpdateOwned(ctx, r.db, &entities.PlantingSite{}, id, uid, updates, siteNotFound)
}

// DeleteOwned relies on the restrict constraints of planting_records and
// biodiversity_records to refuse removing a site that is still in use.
func (r *siteRepo) DeleteOwned(ctx context.Context, id, uid uint) error {
	err := store.DeleteOwned(ctx, r.db, &entities.PlantingSite{}, id, uid, siteNotFound)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &apperr.Error{Kind: apperr.KindValidation, Msg: siteInUse, Err: err}
	}
	return err
}
