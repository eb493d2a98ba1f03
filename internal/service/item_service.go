package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"lostfound/internal/cache"
	apperrors "lostfound/internal/errors"
	"lostfound/internal/model"
	"lostfound/internal/notify"
	"lostfound/internal/repository"
)

const itemCacheTTL = 5 * time.Minute

// NewItem carries the fields of an item being reported.
type NewItem struct {
	Name        string
	Description string
	Status      model.ItemStatus
	Location    *string
	OwnerID     *uint
}

// ItemService handles item operations.
type ItemService interface {
	ListItems(ctx context.Context) ([]model.ItemWithOwner, error)
	GetItem(ctx context.Context, id uint) (*model.ItemWithOwner, error)
	CreateItem(ctx context.Context, in NewItem) (*model.Item, error)
	UpdateStatus(ctx context.Context, id uint, status model.ItemStatus) error
	DeleteItem(ctx context.Context, id uint) error
}

type itemService struct {
	repo     repository.ItemRepository
	cache    *cache.Client
	notifier notify.Notifier
	now      func() time.Time
}

// NewItemService creates a new item service. cache and notifier may be nil.
func NewItemService(repo repository.ItemRepository, cache *cache.Client, notifier notify.Notifier) ItemService {
	return &itemService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		now:      time.Now,
	}
}

// ListItems returns every item with its owner, unowned items included.
func (s *itemService) ListItems(ctx context.Context) ([]model.ItemWithOwner, error) {
	items, err := s.repo.ListWithOwner(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetItem retrieves an item with its owner, with caching.
func (s *itemService) GetItem(ctx context.Context, id uint) (*model.ItemWithOwner, error) {
	var cached model.ItemWithOwner
	if s.cache.GetJSON(ctx, cache.ItemKey(id), &cached) {
		return &cached, nil
	}

	item, err := s.repo.FindWithOwner(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}

	s.cache.SetJSON(ctx, cache.ItemKey(id), item, itemCacheTTL)
	return item, nil
}

// CreateItem inserts the item and, when an owner is given, its ownership
// link. Either both rows persist or neither does.
func (s *itemService) CreateItem(ctx context.Context, in NewItem) (*model.Item, error) {
	if !in.Status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	item := &model.Item{
		Name:         in.Name,
		Description:  in.Description,
		Status:       in.Status,
		Location:     in.Location,
		DateReported: s.now().UTC(),
	}

	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.ItemRepository) error {
		if err := tx.Create(ctx, item); err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
		if in.OwnerID != nil {
			if err := tx.CreateOwnership(ctx, item.ID, *in.OwnerID); err != nil {
				return fmt.Errorf("insert ownership: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// UpdateStatus changes an item's status. Marking an owned item found tells
// its owner; a failed notification does not fail the update.
func (s *itemService) UpdateStatus(ctx context.Context, id uint, status model.ItemStatus) error {
	if !status.Valid() {
		return apperrors.ErrInvalidStatus
	}

	affected, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update item status: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrItemNotFound
	}

	_ = s.cache.Delete(ctx, cache.ItemKey(id))

	if status == model.ItemStatusFound {
		s.notifyOwner(ctx, id)
	}
	return nil
}

func (s *itemService) notifyOwner(ctx context.Context, id uint) {
	if s.notifier == nil {
		return
	}
	item, err := s.repo.FindWithOwner(ctx, id)
	if err != nil {
		log.Printf("notify owner of item %d: %v", id, err)
		return
	}
	if item.OwnerEmail == nil || *item.OwnerEmail == "" {
		return
	}

	subject, body := notify.FoundItemMessage(item.Name, item.Location)
	if err := s.notifier.Notify(ctx, *item.OwnerEmail, subject, body); err != nil {
		log.Printf("notify owner of item %d: %v", id, err)
	}
}

// DeleteItem removes the item's ownership links and then the item, in one
// transaction.
func (s *itemService) DeleteItem(ctx context.Context, id uint) error {
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.ItemRepository) error {
		if err := tx.DeleteOwnerships(ctx, id); err != nil {
			return fmt.Errorf("delete ownership: %w", err)
		}
		deleted, err := tx.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if deleted == 0 {
			return apperrors.ErrItemNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrItemNotFound) {
			return err
		}
		return fmt.Errorf("delete item: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.ItemKey(id))
	return nil
}
