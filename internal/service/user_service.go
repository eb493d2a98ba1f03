package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"lostfound/internal/cache"
	apperrors "lostfound/internal/errors"
	"lostfound/internal/model"
	"lostfound/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// UserService exposes owner operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.Owner, error)
	GetUser(ctx context.Context, id uint) (*model.Owner, error)
	LoginOrRegister(ctx context.Context, email, name, dob string) (owner *model.Owner, created bool, err error)
	GetUserItems(ctx context.Context, userID uint) ([]model.Item, error)
}

type userService struct {
	owners repository.OwnerRepository
	items  repository.ItemRepository
	cache  *cache.Client
}

// NewUserService builds a UserService with repositories and cache.
func NewUserService(owners repository.OwnerRepository, items repository.ItemRepository, cache *cache.Client) UserService {
	return &userService{owners: owners, items: items, cache: cache}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.Owner, error) {
	owners, err := s.owners.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return owners, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.Owner, error) {
	var cached model.Owner
	if s.cache.GetJSON(ctx, cache.OwnerKey(id), &cached) {
		return &cached, nil
	}

	owner, err := s.owners.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	s.cache.SetJSON(ctx, cache.OwnerKey(id), owner, userCacheTTL)
	return owner, nil
}

// LoginOrRegister returns the owner with this email, creating it when absent.
// An existing owner is returned unchanged; name and dob only seed new rows.
// If a concurrent request inserts the same email first, the unique index
// rejects our insert and the winner's row is fetched instead.
func (s *userService) LoginOrRegister(ctx context.Context, email, name, dob string) (*model.Owner, bool, error) {
	existing, err := s.owners.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("find user by email: %w", err)
	}

	owner := &model.Owner{Name: name, Email: email, DOB: dob}
	if err := s.owners.Create(ctx, owner); err != nil {
		if !isDuplicateKey(err) {
			return nil, false, fmt.Errorf("create user: %w", err)
		}
		winner, err := s.owners.FindByEmail(ctx, email)
		if err != nil {
			return nil, false, fmt.Errorf("refetch user after conflict: %w", err)
		}
		return winner, false, nil
	}
	return owner, true, nil
}

// GetUserItems returns items linked to the user. Unknown users have none.
func (s *userService) GetUserItems(ctx context.Context, userID uint) ([]model.Item, error) {
	items, err := s.items.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user items: %w", err)
	}
	return items, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
