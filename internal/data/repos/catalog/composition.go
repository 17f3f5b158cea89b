package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/bloomhaus/floristry-backend/internal/domain"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

type CompositionEdgeRepo interface {
	// Create persists a batch of edges in slice order.
	Create(ctx context.Context, tx *gorm.DB, edges []*types.CompositionEdge) ([]*types.CompositionEdge, error)
	GetByParentIDs(ctx context.Context, tx *gorm.DB, parentIDs []uuid.UUID) ([]*types.CompositionEdge, error)
}

type compositionEdgeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCompositionEdgeRepo(db *gorm.DB, baseLog *logger.Logger) CompositionEdgeRepo {
	repoLog := baseLog.With("repo", "CompositionEdgeRepo")
	return &compositionEdgeRepo{db: db, log: repoLog}
}

func (cr *compositionEdgeRepo) Create(ctx context.Context, tx *gorm.DB, edges []*types.CompositionEdge) ([]*types.CompositionEdge, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(edges) == 0 {
		return []*types.CompositionEdge{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&edges).Error; err != nil {
		return nil, err
	}

	return edges, nil
}

func (cr *compositionEdgeRepo) GetByParentIDs(ctx context.Context, tx *gorm.DB, parentIDs []uuid.UUID) ([]*types.CompositionEdge, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.CompositionEdge
	if len(parentIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("parent_id IN ?", parentIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
