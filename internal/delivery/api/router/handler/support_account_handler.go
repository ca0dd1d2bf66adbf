package handler

import (
	"net/http"
	"time"

	"licensing/internal/delivery/api/response"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SupportAccountHandlerParams holds dependencies for SupportAccountHandler, injected by Fx.
type SupportAccountHandlerParams struct {
	fx.In

	SupportAccountUC usecase.SupportAccountUsecase
}

// SupportAccountHandler serves admin management of support staff.
type SupportAccountHandler struct {
	supportAccountUC usecase.SupportAccountUsecase
}

// NewSupportAccountHandler is the constructor for SupportAccountHandler.
func NewSupportAccountHandler(params SupportAccountHandlerParams) *SupportAccountHandler {
	return &SupportAccountHandler{supportAccountUC: params.SupportAccountUC}
}

// CreateSupport adds a support staff account.
func (h *SupportAccountHandler) CreateSupport(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	dateOfBirth, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithField("dateOfBirth")
	}

	user, err := h.supportAccountUC.CreateSupport(c.Request().Context(), p, &usecase.CreateSupportInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		NationalID:  req.NationalID,
		DateOfBirth: dateOfBirth,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// ListSupport returns every support account.
func (h *SupportAccountHandler) ListSupport(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	users, err := h.supportAccountUC.ListSupport(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users))
}

// DeactivateSupport disables a support account.
func (h *SupportAccountHandler) DeactivateSupport(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.supportAccountUC.DeactivateSupport(c.Request().Context(), p, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Support account deactivated")
}

// ReactivateSupport enables a support account with a temporary password.
func (h *SupportAccountHandler) ReactivateSupport(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	password, err := h.supportAccountUC.ReactivateSupport(c.Request().Context(), p, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message":           "Support account reactivated",
		"temporaryPassword": password,
	})
}
