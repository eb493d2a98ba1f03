package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lostfound/internal/model"
)

const itemWithOwnerColumns = "o.id, o.name, o.description, o.status, o.location, o.date_reported, " +
	"ow.owner_id, u.name AS owner_name, u.email AS owner_email"

// ItemRepository defines item and ownership persistence operations.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	CreateOwnership(ctx context.Context, objectID, ownerID uint) error
	ListWithOwner(ctx context.Context) ([]model.ItemWithOwner, error)
	FindWithOwner(ctx context.Context, id uint) (*model.ItemWithOwner, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Item, error)
	UpdateStatus(ctx context.Context, id uint, status model.ItemStatus) (int64, error)
	DeleteOwnerships(ctx context.Context, objectID uint) error
	Delete(ctx context.Context, id uint) (int64, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ItemRepository) error) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create inserts an Objects row and fills in its id.
func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// CreateOwnership inserts an Owned row.
func (r *itemRepository) CreateOwnership(ctx context.Context, objectID, ownerID uint) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).
		Create(&model.Ownership{ObjectID: objectID, OwnerID: ownerID}).Error
}

func (r *itemRepository) joinedWithOwner(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("Objects AS o").
		Select(itemWithOwnerColumns).
		Joins("LEFT JOIN Owned ow ON o.id = ow.object_id").
		Joins("LEFT JOIN Owners u ON ow.owner_id = u.id")
}

// ListWithOwner returns every item left-joined with its owner.
func (r *itemRepository) ListWithOwner(ctx context.Context) ([]model.ItemWithOwner, error) {
	items := make([]model.ItemWithOwner, 0)
	if err := r.joinedWithOwner(ctx).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindWithOwner returns one item left-joined with its owner, or
// gorm.ErrRecordNotFound.
func (r *itemRepository) FindWithOwner(ctx context.Context, id uint) (*model.ItemWithOwner, error) {
	var items []model.ItemWithOwner
	if err := r.joinedWithOwner(ctx).Where("o.id = ?", id).Limit(1).Scan(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &items[0], nil
}

// ListByOwner returns the items linked to an owner. Unowned items never
// appear here.
func (r *itemRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Item, error) {
	items := make([]model.Item, 0)
	if err := r.db.WithContext(ctx).Table("Objects AS o").
		Select("o.*").
		Joins("JOIN Owned ow ON o.id = ow.object_id").
		Where("ow.owner_id = ?", ownerID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus sets an item's status and returns the number of matched rows.
func (r *itemRepository) UpdateStatus(ctx context.Context, id uint, status model.ItemStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// DeleteOwnerships removes every Owned row of an item.
func (r *itemRepository) DeleteOwnerships(ctx context.Context, objectID uint) error {
	return r.db.WithContext(ctx).Where("object_id = ?", objectID).Delete(&model.Ownership{}).Error
}

// Delete removes an Objects row and returns the number of deleted rows.
func (r *itemRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{})
	return res.RowsAffected, res.Error
}

// WithTransaction executes a function within a database transaction. GORM
// commits on nil, rolls back on error or panic, and releases the connection
// either way.
func (r *itemRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ItemRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &itemRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
