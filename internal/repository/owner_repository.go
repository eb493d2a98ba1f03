package repository

import (
	"context"

	"gorm.io/gorm"

	"lostfound/internal/model"
)

// OwnerRepository defines persistence operations for owners.
type OwnerRepository interface {
	Create(ctx context.Context, owner *model.Owner) error
	FindByID(ctx context.Context, id uint) (*model.Owner, error)
	FindByEmail(ctx context.Context, email string) (*model.Owner, error)
	List(ctx context.Context) ([]model.Owner, error)
}

type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository builds a GORM-backed repository.
func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) Create(ctx context.Context, owner *model.Owner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *ownerRepository) FindByID(ctx context.Context, id uint) (*model.Owner, error) {
	var owner model.Owner
	if err := r.db.WithContext(ctx).First(&owner, id).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) FindByEmail(ctx context.Context, email string) (*model.Owner, error) {
	var owner model.Owner
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) List(ctx context.Context) ([]model.Owner, error) {
	owners := make([]model.Owner, 0)
	if err := r.db.WithContext(ctx).Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}
