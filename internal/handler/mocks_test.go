package handler_test

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"lostfound/internal/auth"
	"lostfound/internal/config"
	"lostfound/internal/detect"
	"lostfound/internal/handler"
	"lostfound/internal/model"
	"lostfound/internal/router"
	"lostfound/internal/service"
)

const testSecret = "test-secret"

// MockItemService is a mock implementation of service.ItemService.
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) ListItems(ctx context.Context) ([]model.ItemWithOwner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ItemWithOwner), args.Error(1)
}

func (m *MockItemService) GetItem(ctx context.Context, id uint) (*model.ItemWithOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ItemWithOwner), args.Error(1)
}

func (m *MockItemService) CreateItem(ctx context.Context, in service.NewItem) (*model.Item, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemService) UpdateStatus(ctx context.Context, id uint, status model.ItemStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockItemService) DeleteItem(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.Owner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Owner), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*model.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockUserService) LoginOrRegister(ctx context.Context, email, name, dob string) (*model.Owner, bool, error) {
	args := m.Called(ctx, email, name, dob)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*model.Owner), args.Bool(1), args.Error(2)
}

func (m *MockUserService) GetUserItems(ctx context.Context, id uint) ([]model.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

// MockAdminService is a mock implementation of service.AdminService.
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, email, password string) (*service.AdminSession, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AdminSession), args.Error(1)
}

func (m *MockAdminService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

// memoryTokenStore revokes tokens in a map.
type memoryTokenStore struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{revoked: map[string]bool{}}
}

func (s *memoryTokenStore) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = true
	return nil
}

func (s *memoryTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[tokenID], nil
}

type testServer struct {
	e          *echo.Echo
	items      *MockItemService
	users      *MockUserService
	admins     *MockAdminService
	tokens     *memoryTokenStore
	jwtService *auth.JWTService
}

func newTestServer() *testServer {
	s := &testServer{
		e:          echo.New(),
		items:      new(MockItemService),
		users:      new(MockUserService),
		admins:     new(MockAdminService),
		tokens:     newMemoryTokenStore(),
		jwtService: auth.NewJWTService(testSecret),
	}
	router.Register(
		s.e,
		&config.Config{JWTSecret: testSecret},
		handler.NewItemHandler(s.items),
		handler.NewUserHandler(s.users),
		handler.NewAdminHandler(s.admins),
		handler.NewDetectionHandler(detect.NewSimulated(rand.NewPCG(1, 2))),
		s.tokens,
	)
	return s
}

func (s *testServer) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}
