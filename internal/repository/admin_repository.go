package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lostfound/internal/model"
)

// AdminRepository defines admin persistence operations.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	Upsert(ctx context.Context, admin *model.Admin) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// FindByEmail finds an admin by email.
func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// Upsert inserts an admin or, when the email exists, replaces its name and
// password hash. Used by the seeder only.
func (r *adminRepository) Upsert(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "password"}),
	}).Create(admin).Error
}
