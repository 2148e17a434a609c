package repositoryImp

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/auth/identity"
)

type sqlRevocations struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSQLRevocations keeps revoked token ids in the revoked_tokens table.
func NewSQLRevocations(db *gorm.DB) identity.RevocationStore {
	return &sqlRevocations{db: db, now: time.Now}
}

func (s *sqlRevocations) Revoke(ctx context.Context, jti string, until time.Time) error {
	row := entities.RevokedToken{JTI: jti, ExpiresAt: until.UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil {
		return apperr.Upstream("could not revoke token", err)
	}
	// Expired rows no longer matter; prune opportunistically.
	s.db.WithContext(ctx).Where("expires_at < ?", s.now().UTC()).Delete(&entities.RevokedToken{})
	return nil
}

func (s *sqlRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&entities.RevokedToken{}).Where("jti = ?", jti).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

type redisRevocations struct {
	rdb redis.UniversalClient
	now func() time.Time
}

const revokedKeyPrefix = "msitumum:revoked:"

// NewRedisRevocations stores revoked ids as keys that expire with the token.
func NewRedisRevocations(rdb redis.UniversalClient) identity.RevocationStore {
	return &redisRevocations{rdb: rdb, now: time.Now}
}

func (s *redisRevocations) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err(); err != nil {
		return apperr.Upstream("could not revoke token", err)
	}
	return nil
}

func (s *redisRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
