package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/bloomhaus/floristry-backend/internal/domain"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

type AdminRepo interface {
	Create(ctx context.Context, tx *gorm.DB, admins []*types.Admin) ([]*types.Admin, error)
	// GetByIDWithStore resolves an admin together with its store association.
	// Returns nil (no error) when the admin does not exist.
	GetByIDWithStore(ctx context.Context, tx *gorm.DB, adminID uuid.UUID) (*types.Admin, error)
	GetByEmails(ctx context.Context, tx *gorm.DB, adminEmails []string) ([]*types.Admin, error)
	EmailExists(ctx context.Context, tx *gorm.DB, adminEmail string) (bool, error)
	SetPhoneVerified(ctx context.Context, tx *gorm.DB, adminID uuid.UUID, verified bool) error
}

type adminRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAdminRepo(db *gorm.DB, baseLog *logger.Logger) AdminRepo {
	repoLog := baseLog.With("repo", "AdminRepo")
	return &adminRepo{db: db, log: repoLog}
}

func (ar *adminRepo) Create(ctx context.Context, tx *gorm.DB, admins []*types.Admin) ([]*types.Admin, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(admins) == 0 {
		return []*types.Admin{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&admins).Error; err != nil {
		return nil, err
	}

	return admins, nil
}

func (ar *adminRepo) GetByIDWithStore(ctx context.Context, tx *gorm.DB, adminID uuid.UUID) (*types.Admin, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Admin
	if err := transaction.WithContext(ctx).
		Preload("Store").
		Where("id = ?", adminID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (ar *adminRepo) GetByEmails(ctx context.Context, tx *gorm.DB, adminEmails []string) ([]*types.Admin, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Admin
	if len(adminEmails) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("email IN ?", adminEmails).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *adminRepo) EmailExists(ctx context.Context, tx *gorm.DB, adminEmail string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Admin{}).
		Where("email = ?", adminEmail).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ar *adminRepo) SetPhoneVerified(ctx context.Context, tx *gorm.DB, adminID uuid.UUID, verified bool) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Admin{}).
		Where("id = ?", adminID).
		Update("phone_verified", verified).Error
}
