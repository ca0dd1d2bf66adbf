package handler

import (
	"net/http"

	"licensing/internal/delivery/api/response"
	"licensing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the caller's own account and the user directory.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// UpdateUsernameRequest represents the request body for renaming the caller
type UpdateUsernameRequest struct {
	Username string `json:"username" validate:"required,max=50"`
}

// UpdatePasswordRequest represents the request body for changing the caller's password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// GetProfile returns the caller's account.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateUsername renames the caller.
func (h *ProfileHandler) UpdateUsername(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req UpdateUsernameRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateUsername(c.Request().Context(), p, req.Username)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdatePassword changes the caller's password and signs out every session.
func (h *ProfileHandler) UpdatePassword(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req UpdatePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	err = h.profileUC.UpdatePassword(c.Request().Context(), p, &usecase.UpdatePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Password updated")
}

// ListUsers returns the user directory.
func (h *ProfileHandler) ListUsers(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	users, err := h.profileUC.ListUsers(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}
