package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lostfound/internal/model"
	"lostfound/internal/service"
)

// ItemHandler handles item endpoints.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItemRequest represents a lost/found item report. An ownerId of 0 is
// treated as absent.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"required,oneof=lost found"`
	Location    *string `json:"location"`
	OwnerID     *uint   `json:"ownerId"`
}

// CreateItemResponse echoes the stored item.
type CreateItemResponse struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Status       model.ItemStatus `json:"status"`
	Location     *string          `json:"location"`
	DateReported time.Time        `json:"dateReported"`
	OwnerID      *uint            `json:"ownerId"`
}

// UpdateStatusRequest represents a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=lost found"`
}

// UpdateStatusResponse represents the applied status change.
type UpdateStatusResponse struct {
	ID     uint             `json:"id"`
	Status model.ItemStatus `json:"status"`
}

// ListItems godoc
// @Summary List all items with their owners
// @Tags items
// @Produce json
// @Success 200 {array} model.ItemWithOwner
// @Failure 500 {object} errors.ErrorResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.itemService.ListItems(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to fetch items")
	}
	return c.JSON(http.StatusOK, items)
}

// GetItem godoc
// @Summary Get item by id
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} model.ItemWithOwner
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	item, err := h.itemService.GetItem(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to fetch item")
	}
	return c.JSON(http.StatusOK, item)
}

// CreateItem godoc
// @Summary Report an item
// @Tags items
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "Item data"
// @Success 201 {object} CreateItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /items [post]
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req CreateItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.OwnerID != nil && *req.OwnerID == 0 {
		req.OwnerID = nil
	}

	item, err := h.itemService.CreateItem(c.Request().Context(), service.NewItem{
		Name:        req.Name,
		Description: req.Description,
		Status:      model.ItemStatus(req.Status),
		Location:    req.Location,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		return respondError(c, err, "Failed to create item")
	}

	return c.JSON(http.StatusCreated, CreateItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Status:       item.Status,
		Location:     item.Location,
		DateReported: item.DateReported,
		OwnerID:      req.OwnerID,
	})
}

// UpdateStatus godoc
// @Summary Update item status
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} UpdateStatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /items/{id}/status [patch]
func (h *ItemHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status := model.ItemStatus(req.Status)
	if err := h.itemService.UpdateStatus(c.Request().Context(), id, status); err != nil {
		return respondError(c, err, "Failed to update item status")
	}
	return c.JSON(http.StatusOK, UpdateStatusResponse{ID: id, Status: status})
}

// DeleteItem godoc
// @Summary Delete an item and its ownership link
// @Tags items
// @Param id path int true "Item ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.itemService.DeleteItem(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Failed to delete item")
	}
	return c.NoContent(http.StatusNoContent)
}
