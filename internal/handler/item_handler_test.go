package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "lostfound/internal/errors"
	"lostfound/internal/model"
	"lostfound/internal/service"
)

func uintPtr(v uint) *uint { return &v }
func strPtr(v string) *string { return &v }

func decodeError(t *testing.T, body []byte) apperrors.ErrorResponse {
	t.Helper()
	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestHealth(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestListItems(t *testing.T) {
	reported := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setupMock  func(*MockItemService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "owner fields present for every row",
			setupMock: func(m *MockItemService) {
				m.On("ListItems", mock.Anything).Return([]model.ItemWithOwner{
					{ID: 1, Name: "Wallet", Description: "Brown", Status: model.ItemStatusLost, DateReported: reported,
						OwnerID: uintPtr(7), OwnerName: strPtr("John Doe"), OwnerEmail: strPtr("john@example.com")},
					{ID: 2, Name: "Umbrella", Description: "Black", Status: model.ItemStatusFound, DateReported: reported},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `[
				{"id":1,"name":"Wallet","description":"Brown","status":"lost","location":null,"date_reported":"2024-01-15T10:30:00Z",
				 "owner_id":7,"owner_name":"John Doe","owner_email":"john@example.com"},
				{"id":2,"name":"Umbrella","description":"Black","status":"found","location":null,"date_reported":"2024-01-15T10:30:00Z",
				 "owner_id":null,"owner_name":null,"owner_email":null}
			]`,
		},
		{
			name: "empty registry",
			setupMock: func(m *MockItemService) {
				m.On("ListItems", mock.Anything).Return([]model.ItemWithOwner{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "storage failure",
			setupMock: func(m *MockItemService) {
				m.On("ListItems", mock.Anything).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to fetch items","code":"INTERNAL_ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			tt.setupMock(s.items)

			rec := s.do(http.MethodGet, "/api/items", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			s.items.AssertExpectations(t)
		})
	}
}

func TestGetItem(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(*MockItemService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "found",
			path: "/api/items/3",
			setupMock: func(m *MockItemService) {
				m.On("GetItem", mock.Anything, uint(3)).Return(&model.ItemWithOwner{ID: 3, Name: "Keys", Status: model.ItemStatusLost}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/items/99",
			setupMock: func(m *MockItemService) {
				m.On("GetItem", mock.Anything, uint(99)).Return(nil, apperrors.ErrItemNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "ITEM_NOT_FOUND",
		},
		{
			name:       "non numeric id",
			path:       "/api/items/abc",
			setupMock:  func(*MockItemService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			tt.setupMock(s.items)

			rec := s.do(http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec.Body.Bytes()).Code)
			}
			s.items.AssertExpectations(t)
		})
	}
}

func TestCreateItem(t *testing.T) {
	reported := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockItemService)
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{
			name: "with owner",
			body: `{"name":"Wallet","description":"Brown leather","status":"lost","location":"Library","ownerId":7}`,
			setupMock: func(m *MockItemService) {
				m.On("CreateItem", mock.Anything, service.NewItem{
					Name: "Wallet", Description: "Brown leather", Status: model.ItemStatusLost,
					Location: strPtr("Library"), OwnerID: uintPtr(7),
				}).Return(&model.Item{
					ID: 12, Name: "Wallet", Description: "Brown leather", Status: model.ItemStatusLost,
					Location: strPtr("Library"), DateReported: reported,
				}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody: `{"id":12,"name":"Wallet","description":"Brown leather","status":"lost",
				"location":"Library","dateReported":"2024-01-15T10:30:00Z","ownerId":7}`,
		},
		{
			name: "owner id zero means no owner",
			body: `{"name":"Umbrella","description":"Black","status":"found","ownerId":0}`,
			setupMock: func(m *MockItemService) {
				m.On("CreateItem", mock.Anything, service.NewItem{
					Name: "Umbrella", Description: "Black", Status: model.ItemStatusFound,
				}).Return(&model.Item{
					ID: 13, Name: "Umbrella", Description: "Black", Status: model.ItemStatusFound, DateReported: reported,
				}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody: `{"id":13,"name":"Umbrella","description":"Black","status":"found",
				"location":null,"dateReported":"2024-01-15T10:30:00Z","ownerId":null}`,
		},
		{
			name:       "status outside enumeration",
			body:       `{"name":"Laptop","status":"stolen"}`,
			setupMock:  func(*MockItemService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "missing name",
			body:       `{"status":"lost"}`,
			setupMock:  func(*MockItemService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			setupMock:  func(*MockItemService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name: "unknown owner fails the insert",
			body: `{"name":"Keys","status":"lost","ownerId":4242}`,
			setupMock: func(m *MockItemService) {
				m.On("CreateItem", mock.Anything, mock.AnythingOfType("service.NewItem")).
					Return(nil, errors.New("create item: insert ownership: FOREIGN KEY constraint failed"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to create item","code":"INTERNAL_ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			tt.setupMock(s.items)

			rec := s.do(http.MethodPost, "/api/items", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec.Body.Bytes()).Code)
			}
			s.items.AssertExpectations(t)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		setupMock  func(*MockItemService)
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{
			name: "mark found",
			path: "/api/items/5/status",
			body: `{"status":"found"}`,
			setupMock: func(m *MockItemService) {
				m.On("UpdateStatus", mock.Anything, uint(5), model.ItemStatusFound).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":5,"status":"found"}`,
		},
		{
			name: "missing item",
			path: "/api/items/50/status",
			body: `{"status":"lost"}`,
			setupMock: func(m *MockItemService) {
				m.On("UpdateStatus", mock.Anything, uint(50), model.ItemStatusLost).Return(apperrors.ErrItemNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "ITEM_NOT_FOUND",
		},
		{
			name:       "invalid status",
			path:       "/api/items/5/status",
			body:       `{"status":"misplaced"}`,
			setupMock:  func(*MockItemService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "invalid id",
			path:       "/api/items/0/status",
			body:       `{"status":"found"}`,
			setupMock:  func(*MockItemService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			tt.setupMock(s.items)

			rec := s.do(http.MethodPatch, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec.Body.Bytes()).Code)
			}
			s.items.AssertExpectations(t)
		})
	}
}

func TestDeleteItem(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		s := newTestServer()
		s.items.On("DeleteItem", mock.Anything, uint(4)).Return(nil)

		rec := s.do(http.MethodDelete, "/api/items/4", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		s.items.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		s := newTestServer()
		s.items.On("DeleteItem", mock.Anything, uint(4)).Return(apperrors.ErrItemNotFound)

		rec := s.do(http.MethodDelete, "/api/items/4", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ITEM_NOT_FOUND", decodeError(t, rec.Body.Bytes()).Code)
	})

	t.Run("storage failure hides details", func(t *testing.T) {
		s := newTestServer()
		s.items.On("DeleteItem", mock.Anything, uint(4)).Return(errors.New("deadlock found"))

		rec := s.do(http.MethodDelete, "/api/items/4", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "deadlock")
	})
}
