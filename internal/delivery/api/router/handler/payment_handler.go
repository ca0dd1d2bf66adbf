package handler

import (
	"context"
	"net/http"

	"licensing/internal/delivery/api/response"
	"licensing/internal/domain/entity"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	BillingUC usecase.BillingUsecase
}

// PaymentHandler serves contract and rent payments of one business.
type PaymentHandler struct {
	billingUC usecase.BillingUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{billingUC: params.BillingUC}
}

// InitiatePaymentRequest selects the payment rail
type InitiatePaymentRequest struct {
	PaymentMethod entity.PaymentMethod `json:"paymentMethod" validate:"required,oneof=card mobile"`
	PhoneNumber   string               `json:"phoneNumber" validate:"required_if=PaymentMethod mobile"`
}

// InitiateContract starts a contract fee payment.
func (h *PaymentHandler) InitiateContract(c echo.Context) error {
	return h.initiate(c, h.billingUC.InitiateContractPayment)
}

// InitiateRent starts the current month's rent payment.
func (h *PaymentHandler) InitiateRent(c echo.Context) error {
	return h.initiate(c, h.billingUC.InitiateRentPayment)
}

type initiateFunc func(ctx context.Context, principal entity.Principal, input *usecase.InitiatePaymentInput) (*usecase.PaymentInitiation, error)

func (h *PaymentHandler) initiate(c echo.Context, start initiateFunc) error {
	p, businessID, err := principalAndBusiness(c)
	if err != nil {
		return err
	}

	var req InitiatePaymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	initiation, err := start(c.Request().Context(), p, &usecase.InitiatePaymentInput{
		BusinessID:  businessID,
		Method:      req.PaymentMethod,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, initiation)
}

// CheckStatus polls the provider once for a reference.
func (h *PaymentHandler) CheckStatus(c echo.Context) error {
	p, businessID, err := principalAndBusiness(c)
	if err != nil {
		return err
	}

	check, err := h.billingUC.CheckPaymentStatus(c.Request().Context(), p, businessID, c.Param("reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, check)
}

// AwaitPayment polls until the payment settles or the polling ceiling passes.
func (h *PaymentHandler) AwaitPayment(c echo.Context) error {
	p, businessID, err := principalAndBusiness(c)
	if err != nil {
		return err
	}

	check, err := h.billingUC.AwaitPayment(c.Request().Context(), p, businessID, c.Param("reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, check)
}

// Status summarizes the contract and current rent month.
func (h *PaymentHandler) Status(c echo.Context) error {
	p, businessID, err := principalAndBusiness(c)
	if err != nil {
		return err
	}

	status, err := h.billingUC.PaymentStatus(c.Request().Context(), p, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// RentHistory returns the last twelve rents.
func (h *PaymentHandler) RentHistory(c echo.Context) error {
	p, businessID, err := principalAndBusiness(c)
	if err != nil {
		return err
	}

	rents, err := h.billingUC.RentHistory(c.Request().Context(), p, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rents)
}

// RentSchedule returns the next three rent obligations.
func (h *PaymentHandler) RentSchedule(c echo.Context) error {
	p, businessID, err := principalAndBusiness(c)
	if err != nil {
		return err
	}

	schedule, err := h.billingUC.RentSchedule(c.Request().Context(), p, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

func principalAndBusiness(c echo.Context) (entity.Principal, uuid.UUID, error) {
	p, err := principal(c)
	if err != nil {
		return entity.Principal{}, uuid.Nil, err
	}

	businessID, err := uuidParam(c, "businessId")
	if err != nil {
		return entity.Principal{}, uuid.Nil, err
	}

	return p, businessID, nil
}
