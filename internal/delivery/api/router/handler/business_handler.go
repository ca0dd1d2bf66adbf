package handler

import (
	"net/http"

	"licensing/internal/delivery/api/response"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	BillingUC  usecase.BillingUsecase
}

// BusinessHandler serves the business application workflow.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	billingUC  usecase.BillingUsecase
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		billingUC:  params.BillingUC,
	}
}

// ApplicationRequest is the owner-editable part of an application
type ApplicationRequest struct {
	Name              string `json:"name" validate:"required,max=200"`
	JustificationText string `json:"justificationText" validate:"required"`
}

// DecisionRequest is an admin decision on an application
type DecisionRequest struct {
	Status        entity.BusinessStatus `json:"status" validate:"required"`
	AdminFeedback string                `json:"adminFeedback"`
	RentFee       *decimal.Decimal      `json:"rentFee"`
}

// Register submits the caller's application.
func (h *BusinessHandler) Register(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req ApplicationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	business, err := h.businessUC.Register(c.Request().Context(), p, &usecase.ApplicationInput{
		Name:              req.Name,
		JustificationText: req.JustificationText,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, business)
}

// ListApplications returns every application, optionally filtered by ?status=.
func (h *BusinessHandler) ListApplications(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var status *entity.BusinessStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.BusinessStatus(raw)
		if !s.IsValid() {
			return domainerrors.ErrValidationFailed.WithField("status")
		}
		status = &s
	}

	businesses, err := h.businessUC.ListApplications(c.Request().Context(), p, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, businesses)
}

// MyApplication returns the caller's application.
func (h *BusinessHandler) MyApplication(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	business, err := h.businessUC.MyApplication(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business)
}

// Edit changes the caller's application.
func (h *BusinessHandler) Edit(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	businessID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ApplicationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	business, err := h.businessUC.Edit(c.Request().Context(), p, businessID, &usecase.ApplicationInput{
		Name:              req.Name,
		JustificationText: req.JustificationText,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business)
}

// UpdateStatus applies an admin decision.
func (h *BusinessHandler) UpdateStatus(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	businessID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req DecisionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	business, err := h.businessUC.UpdateStatus(c.Request().Context(), p, businessID, &usecase.ApplicationDecisionInput{
		Status:        req.Status,
		AdminFeedback: req.AdminFeedback,
		RentFee:       req.RentFee,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business)
}

// ActiveContract returns the paid contract of a business.
func (h *BusinessHandler) ActiveContract(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	businessID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	contract, err := h.billingUC.ActiveContract(c.Request().Context(), p, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contract)
}
