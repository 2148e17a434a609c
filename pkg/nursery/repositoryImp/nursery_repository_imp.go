package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/nursery/repository"
)

const (
	nurseryNotFound   = "Nursery not found"
	inventoryNotFound = "Inventory item not found"
)

// stageOrder sorts inventory along the growing pipeline.
const stageOrder = `CASE ni.seedling_stage
	WHEN 'sowing' THEN 1 WHEN 'germination' THEN 2 WHEN 'hardening' THEN 3 WHEN 'ready' THEN 4 ELSE 5 END`

type nurseryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NurseryRepository { return &nurseryRepo{db} }

func (r *nurseryRepo) Create(ctx context.Context, n *entities.Nursery) error {
	return apperr.FromStore(r.db.WithContext(ctx).Create(n).Error, nurseryNotFound)
}

func (r *nurseryRepo) FindByID(ctx context.Context, id uint) (*entities.Nursery, error) {
	var n entities.Nursery
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, apperr.FromStore(err, nurseryNotFound)
	}
	return &n, nil
}

func (r *nurseryRepo) summaries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("nurseries AS n").
		Select(`n.*, u.full_name AS owner_name, u.organization AS organization, u.phone AS owner_phone,
			(SELECT COUNT(DISTINCT ni.species_id) FROM nursery_inventory ni WHERE ni.nursery_id = n.id) AS species_count,
			(SELECT COALESCE(SUM(ni.current_count), 0) FROM nursery_inventory ni WHERE ni.nursery_id = n.id) AS total_seedlings`).
		Joins("LEFT JOIN users u ON u.id = n.user_id")
}

func (r *nurseryRepo) Get(ctx context.Context, id uint) (*repository.NurserySummary, error) {
	var out []repository.NurserySummary
	if err := r.summaries(ctx).Where("n.id = ?", id).Limit(1).Scan(&out).Error; err != nil {
		return nil, apperr.FromStore(err, nurseryNotFound)
	}
	if len(out) == 0 {
		return nil, apperr.NotFound(nurseryNotFound)
	}
	return &out[0], nil
}

func (r *nurseryRepo) List(ctx context.Context) ([]repository.NurserySummary, error) {
	out := []repository.NurserySummary{}
	if err := r.summaries(ctx).Order("n.created_at DESC, n.id DESC").Scan(&out).Error; err != nil {
		return nil, apperr.FromStore(err, nurseryNotFound)
	}
	for i := range out {
		out[i].OwnerPhone = ""
	}
	return out, nil
}

func (r *nurseryRepo) AddInventory(ctx context.Context, item *entities.NurseryInventory) error {
	return apperr.FromStore(r.db.WithContext(ctx).Create(item).Error, inventoryNotFound)
}

func (r *nurseryRepo) inventory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("nursery_inventory AS ni").
		Select("ni.*, sp.common_name AS common_name, sp.scientific_name AS scientific_name, sp.growth_rate AS growth_rate").
		Joins("LEFT JOIN tree_species sp ON sp.id = ni.species_id")
}

func (r *nurseryRepo) Inventory(ctx context.Context, nurseryID uint) ([]repository.InventoryView, error) {
	out := []repository.InventoryView{}
	err := r.inventory(ctx).
		Where("ni.nursery_id = ?", nurseryID).
		Order(stageOrder).Order("ni.species_id ASC, ni.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, apperr.FromStore(err, inventoryNotFound)
	}
	return out, nil
}

func (r *nurseryRepo) UpdateInventoryOwned(ctx context.Context, id, uid uint, updates map[string]any) error {
	owned := r.db.WithContext(ctx).Model(&entities.NurseryInventory{}).
		Where("id = ? AND nursery_id IN (?)", id,
			r.db.Model(&entities.Nursery{}).Select("id").Where("user_id = ?", uid))
	if len(updates) == 0 {
		var n int64
		if err := owned.Count(&n).Error; err != nil {
			return apperr.FromStore(err, inventoryNotFound)
		}
		if n == 0 {
			return apperr.NotFound(inventoryNotFound)
		}
		return nil
	}
	res := owned.Updates(updates)
	if res.Error != nil {
		return apperr.FromStore(res.Error, inventoryNotFound)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(inventoryNotFound)
	}
	return nil
}

func (r *nurseryRepo) Forecast(ctx context.Context, nurseryID uint, until time.Time) ([]repository.InventoryView, error) {
	out := []repository.InventoryView{}
	err := r.inventory(ctx).
		Where("ni.nursery_id = ?", nurseryID).
		Where("ni.expected_ready_date IS NOT NULL AND ni.expected_ready_date <= ?", until.UTC()).
		Where("ni.seedling_stage <> ?", entities.StageReady).
		Order("ni.expected_ready_date ASC, ni.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, apperr.FromStore(err, inventoryNotFound)
	}
	return out, nil
}
