package handler

import (
	"net/http"
	"testing"

	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	mockUsecase "licensing/internal/mocks/usecase"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBusinessHandler(t *testing.T) (*BusinessHandler, *mockUsecase.MockBusinessUsecase, *mockUsecase.MockBillingUsecase) {
	businessUC := mockUsecase.NewMockBusinessUsecase(t)
	billingUC := mockUsecase.NewMockBillingUsecase(t)

	return NewBusinessHandler(BusinessHandlerParams{BusinessUC: businessUC, BillingUC: billingUC}), businessUC, billingUC
}

func TestBusinessHandler_Register(t *testing.T) {
	h, businessUC, _ := newBusinessHandler(t)
	e := newTestEcho(&ownerPrincipal)
	e.POST("/api/v1/businesses", h.Register)

	businessUC.EXPECT().
		Register(mock.Anything, ownerPrincipal, &usecase.ApplicationInput{Name: "Chikondi Grocers", JustificationText: "Fresh produce"}).
		Return(&entity.Business{ID: uuid.New(), Name: "Chikondi Grocers", Status: entity.BusinessStatusPending}, nil)

	rec := doJSON(e, http.MethodPost, "/api/v1/businesses", `{"name":"Chikondi Grocers","justificationText":"Fresh produce"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestBusinessHandler_Register_MissingName(t *testing.T) {
	h, _, _ := newBusinessHandler(t)
	e := newTestEcho(&ownerPrincipal)
	e.POST("/api/v1/businesses", h.Register)

	rec := doJSON(e, http.MethodPost, "/api/v1/businesses", `{"justificationText":"Fresh produce"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "field=name; rule=required", env.Error.Details)
}

func TestBusinessHandler_Unauthenticated(t *testing.T) {
	h, _, _ := newBusinessHandler(t)
	e := newTestEcho(nil)
	e.GET("/api/v1/businesses/mine", h.MyApplication)

	rec := doJSON(e, http.MethodGet, "/api/v1/businesses/mine", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBusinessHandler_ListApplications_StatusFilter(t *testing.T) {
	t.Run("valid filter", func(t *testing.T) {
		h, businessUC, _ := newBusinessHandler(t)
		e := newTestEcho(&adminPrincipal)
		e.GET("/api/v1/businesses", h.ListApplications)

		status := entity.BusinessStatusApproved
		businessUC.EXPECT().ListApplications(mock.Anything, adminPrincipal, &status).Return([]*entity.Business{}, nil)

		rec := doJSON(e, http.MethodGet, "/api/v1/businesses?status=approved", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no filter", func(t *testing.T) {
		h, businessUC, _ := newBusinessHandler(t)
		e := newTestEcho(&adminPrincipal)
		e.GET("/api/v1/businesses", h.ListApplications)

		businessUC.EXPECT().ListApplications(mock.Anything, adminPrincipal, (*entity.BusinessStatus)(nil)).Return(nil, nil)

		rec := doJSON(e, http.MethodGet, "/api/v1/businesses", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		h, _, _ := newBusinessHandler(t)
		e := newTestEcho(&adminPrincipal)
		e.GET("/api/v1/businesses", h.ListApplications)

		rec := doJSON(e, http.MethodGet, "/api/v1/businesses?status=closed", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBusinessHandler_UpdateStatus(t *testing.T) {
	h, businessUC, _ := newBusinessHandler(t)
	e := newTestEcho(&adminPrincipal)
	e.PUT("/api/v1/businesses/:id/status", h.UpdateStatus)
	businessID := uuid.New()

	businessUC.EXPECT().
		UpdateStatus(mock.Anything, adminPrincipal, businessID, mock.MatchedBy(func(in *usecase.ApplicationDecisionInput) bool {
			return in.Status == entity.BusinessStatusApproved &&
				in.RentFee != nil && in.RentFee.Equal(decimal.RequireFromString("25000.50"))
		})).
		Return(&entity.Business{ID: businessID, Status: entity.BusinessStatusApproved}, nil)

	rec := doJSON(e, http.MethodPut, "/api/v1/businesses/"+businessID.String()+"/status", `{"status":"approved","rentFee":"25000.50"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBusinessHandler_UpdateStatus_DomainError(t *testing.T) {
	h, businessUC, _ := newBusinessHandler(t)
	e := newTestEcho(&adminPrincipal)
	e.PUT("/api/v1/businesses/:id/status", h.UpdateStatus)
	businessID := uuid.New()

	businessUC.EXPECT().UpdateStatus(mock.Anything, adminPrincipal, businessID, mock.Anything).Return(nil, domainerrors.ErrRentFeeRequired)

	rec := doJSON(e, http.MethodPut, "/api/v1/businesses/"+businessID.String()+"/status", `{"status":"approved"}`)

	assert.Equal(t, domainerrors.ErrRentFeeRequired.HTTPCode(), rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrRentFeeRequired.ErrorCode(), env.Error.Code)
}

func TestBusinessHandler_Edit_BadID(t *testing.T) {
	h, _, _ := newBusinessHandler(t)
	e := newTestEcho(&ownerPrincipal)
	e.PUT("/api/v1/businesses/:id", h.Edit)

	rec := doJSON(e, http.MethodPut, "/api/v1/businesses/not-a-uuid", `{"name":"x","justificationText":"y"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "field=id", decodeEnvelope(t, rec).Error.Details)
}

func TestBusinessHandler_ActiveContract(t *testing.T) {
	h, _, billingUC := newBusinessHandler(t)
	e := newTestEcho(&ownerPrincipal)
	e.GET("/api/v1/businesses/:id/contract", h.ActiveContract)
	businessID := uuid.New()

	billingUC.EXPECT().ActiveContract(mock.Anything, ownerPrincipal, businessID).Return(nil, domainerrors.ErrContractNotFound)

	rec := doJSON(e, http.MethodGet, "/api/v1/businesses/"+businessID.String()+"/contract", "")

	assert.Equal(t, domainerrors.ErrContractNotFound.HTTPCode(), rec.Code)
}
