// Package store holds query helpers shared by the gorm repositories.
package store

import (
	"context"

	"gorm.io/gorm"

	"msitumum/pkg/apperr"
)

// UpdateOwned applies updates to row id of model when it belongs to uid.
// A row that is missing and a row owned by someone else both yield NotFound.
func UpdateOwned(ctx context.Context, db *gorm.DB, model any, id, uid uint, updates map[string]any, notFound string) error {
	q := db.WithContext(ctx).Model(model).Where("id = ? AND user_id = ?", id, uid)
	if len(updates) == 0 {
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return apperr.FromStore(err, notFound)
		}
		if n == 0 {
			return apperr.NotFound(notFound)
		}
		return nil
	}
	res := q.Updates(updates)
	if res.Error != nil {
		return apperr.FromStore(res.Error, notFound)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(notFound)
	}
	return nil
}

// DeleteOwned removes row id of model when it belongs to uid.
func DeleteOwned(ctx context.Context, db *gorm.DB, model any, id, uid uint, notFound string) error {
	res := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).Delete(model)
	if res.Error != nil {
		return apperr.FromStore(res.Error, notFound)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(notFound)
	}
	return nil
}

// Exists reports whether a row with the given id is present in model's table.
func Exists(ctx context.Context, db *gorm.DB, model any, id uint) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, apperr.FromStore(err, "")
	}
	return n > 0, nil
}
