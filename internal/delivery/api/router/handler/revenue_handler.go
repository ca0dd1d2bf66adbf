package handler

import (
	"net/http"

	"licensing/internal/delivery/api/response"
	"licensing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RevenueHandlerParams holds dependencies for RevenueHandler, injected by Fx.
type RevenueHandlerParams struct {
	fx.In

	RevenueUC usecase.RevenueUsecase
}

// RevenueHandler serves admin revenue reporting.
type RevenueHandler struct {
	revenueUC usecase.RevenueUsecase
}

// NewRevenueHandler is the constructor for RevenueHandler.
func NewRevenueHandler(params RevenueHandlerParams) *RevenueHandler {
	return &RevenueHandler{revenueUC: params.RevenueUC}
}

// TotalRevenue sums settled contract and rent payments.
func (h *RevenueHandler) TotalRevenue(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	revenue, err := h.revenueUC.TotalRevenue(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, revenue)
}

// UnpaidBusinesses lists businesses owing this month's rent.
func (h *RevenueHandler) UnpaidBusinesses(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	unpaid, err := h.revenueUC.UnpaidBusinesses(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, unpaid)
}
