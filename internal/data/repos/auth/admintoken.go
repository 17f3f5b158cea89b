package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/bloomhaus/floristry-backend/internal/domain"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

type AdminTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tokens []*types.AdminToken) ([]*types.AdminToken, error)
	GetByAdminIDs(ctx context.Context, tx *gorm.DB, adminIDs []uuid.UUID) ([]*types.AdminToken, error)
	GetByAccessTokens(ctx context.Context, tx *gorm.DB, accessTokens []string) ([]*types.AdminToken, error)
	GetByRefreshTokens(ctx context.Context, tx *gorm.DB, refreshTokens []string) ([]*types.AdminToken, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, tokenIDs []uuid.UUID) error
}

type adminTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAdminTokenRepo(db *gorm.DB, baseLog *logger.Logger) AdminTokenRepo {
	repoLog := baseLog.With("repo", "AdminTokenRepo")
	return &adminTokenRepo{db: db, log: repoLog}
}

func (tr *adminTokenRepo) Create(ctx context.Context, tx *gorm.DB, tokens []*types.AdminToken) ([]*types.AdminToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(tokens) == 0 {
		return []*types.AdminToken{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&tokens).Error; err != nil {
		return nil, err
	}

	return tokens, nil
}

func (tr *adminTokenRepo) GetByAdminIDs(ctx context.Context, tx *gorm.DB, adminIDs []uuid.UUID) ([]*types.AdminToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.AdminToken
	if len(adminIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("admin_id IN ?", adminIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *adminTokenRepo) GetByAccessTokens(ctx context.Context, tx *gorm.DB, accessTokens []string) ([]*types.AdminToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.AdminToken
	if len(accessTokens) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("access_token IN ?", accessTokens).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *adminTokenRepo) GetByRefreshTokens(ctx context.Context, tx *gorm.DB, refreshTokens []string) ([]*types.AdminToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.AdminToken
	if len(refreshTokens) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("refresh_token IN ?", refreshTokens).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *adminTokenRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, tokenIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if len(tokenIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", tokenIDs).
		Delete(&types.AdminToken{}).Error
}
