package repositoryImp

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

// Create inserts u. A username or email taken by a concurrent registration
// is reported the same way as one found by Exists.
func (r *userRepo) Create(ctx context.Context, u *entities.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &apperr.Error{Kind: apperr.KindValidation, Msg: repository.ErrUserExists, Err: err}
	}
	return apperr.FromStore(err, "")
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, apperr.FromStore(err, "User not found")
	}
	return &u, nil
}

func (r *userRepo) FindByLogin(ctx context.Context, login string) (*entities.User, error) {
	col := "username"
	if strings.Contains(login, "@") {
		col = "email"
	}
	var u entities.User
	if err := r.db.WithContext(ctx).Where(col+" = ?", login).First(&u).Error; err != nil {
		return nil, apperr.FromStore(err, "User not found")
	}
	return &u, nil
}

func (r *userRepo) Exists(ctx context.Context, username, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&n).Error
	if err != nil {
		return false, apperr.FromStore(err, "")
	}
	return n > 0, nil
}
