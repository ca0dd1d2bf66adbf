package handler

import (
	"net/http"

	"licensing/internal/delivery/api/response"
	"licensing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
}

// LocationHandler serves market locations.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{locationUC: params.LocationUC}
}

// CreateLocationRequest names a new location
type CreateLocationRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// CreateLocation adds a location. Admin only.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req CreateLocationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), p, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location)
}

// ListAvailableLocations returns unoccupied locations. Public.
func (h *LocationHandler) ListAvailableLocations(c echo.Context) error {
	locations, err := h.locationUC.ListAvailableLocations(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// DeleteLocation removes an unoccupied location.
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	locationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), p, locationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Location deleted")
}

// ApplyForLocation binds the caller's approved business to a location.
func (h *LocationHandler) ApplyForLocation(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	locationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	business, err := h.locationUC.ApplyForLocation(c.Request().Context(), p, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business)
}
