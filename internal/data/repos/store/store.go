package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/bloomhaus/floristry-backend/internal/domain"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

type StoreRepo interface {
	Create(ctx context.Context, tx *gorm.DB, stores []*types.Store) ([]*types.Store, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, storeIDs []uuid.UUID) ([]*types.Store, error)
}

type storeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStoreRepo(db *gorm.DB, baseLog *logger.Logger) StoreRepo {
	repoLog := baseLog.With("repo", "StoreRepo")
	return &storeRepo{db: db, log: repoLog}
}

func (sr *storeRepo) Create(ctx context.Context, tx *gorm.DB, stores []*types.Store) ([]*types.Store, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(stores) == 0 {
		return []*types.Store{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&stores).Error; err != nil {
		return nil, err
	}

	return stores, nil
}

func (sr *storeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, storeIDs []uuid.UUID) ([]*types.Store, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Store
	if len(storeIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", storeIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
