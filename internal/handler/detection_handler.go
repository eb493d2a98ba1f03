package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lostfound/internal/detect"
)

// DetectionHandler exposes the object detection capability.
type DetectionHandler struct {
	detector detect.Detector
}

// NewDetectionHandler creates a new detection handler.
func NewDetectionHandler(detector detect.Detector) *DetectionHandler {
	return &DetectionHandler{detector: detector}
}

// DetectRequest names the item the camera is looking for.
type DetectRequest struct {
	Query string `json:"query" validate:"required"`
}

// DetectResponse lists detected labels.
type DetectResponse struct {
	Query  string   `json:"query"`
	Labels []string `json:"labels"`
	Found  bool     `json:"found"`
}

// Detect godoc
// @Summary Look for an item in the camera frame
// @Tags detections
// @Accept json
// @Produce json
// @Param request body DetectRequest true "Item to look for"
// @Success 200 {object} DetectResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /detections [post]
func (h *DetectionHandler) Detect(c echo.Context) error {
	var req DetectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	labels, err := h.detector.Detect(c.Request().Context(), req.Query)
	if err != nil {
		return respondError(c, err, "Failed to detect objects")
	}

	return c.JSON(http.StatusOK, DetectResponse{
		Query:  req.Query,
		Labels: labels,
		Found:  detect.Matches(labels, req.Query),
	})
}
