package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"licensing/config"
	"licensing/internal/delivery/api/middleware"
	"licensing/internal/delivery/api/router/handler"
	"licensing/internal/delivery/api/validator"
	"licensing/internal/domain/entity"
	"licensing/internal/domain/service"
	"licensing/internal/infra/metrics"
	mockSvc "licensing/internal/mocks/service"
	mockUsecase "licensing/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	e          *echo.Echo
	tokenSvc   *mockSvc.MockTokenService
	locationUC *mockUsecase.MockLocationUsecase
	revenueUC  *mockUsecase.MockRevenueUsecase
}

func newRouterFixtures(t *testing.T) routerFixtures {
	reg := metrics.NewRegistry()
	metrics.New(reg)

	f := routerFixtures{
		e:          echo.New(),
		tokenSvc:   mockSvc.NewMockTokenService(t),
		locationUC: mockUsecase.NewMockLocationUsecase(t),
		revenueUC:  mockUsecase.NewMockRevenueUsecase(t),
	}
	f.e.Validator = validator.New()

	billingUC := mockUsecase.NewMockBillingUsecase(t)
	ticketUC := mockUsecase.NewMockTicketUsecase(t)
	reportUC := mockUsecase.NewMockReportUsecase(t)

	cfg := &config.Config{
		Storage: &config.StorageConfig{PublicBasePath: "/uploads"},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.UploadBodySize = "1MB"

	NewRouter(RouterParams{
		AuthHandler:           handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t)}),
		ProfileHandler:        handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mockUsecase.NewMockProfileUsecase(t)}),
		SupportAccountHandler: handler.NewSupportAccountHandler(handler.SupportAccountHandlerParams{SupportAccountUC: mockUsecase.NewMockSupportAccountUsecase(t)}),
		BusinessHandler:       handler.NewBusinessHandler(handler.BusinessHandlerParams{BusinessUC: mockUsecase.NewMockBusinessUsecase(t), BillingUC: billingUC}),
		LocationHandler:       handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: f.locationUC}),
		PaymentHandler:        handler.NewPaymentHandler(handler.PaymentHandlerParams{BillingUC: billingUC}),
		RevenueHandler:        handler.NewRevenueHandler(handler.RevenueHandlerParams{RevenueUC: f.revenueUC}),
		SupportHandler:        handler.NewSupportHandler(handler.SupportHandlerParams{TicketUC: ticketUC, ReportUC: reportUC}),
		NotificationHandler:   handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: mockUsecase.NewMockNotificationUsecase(t)}),
		DeviceHandler:         handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t)}),
		UploadHandler:         handler.NewUploadHandler(handler.UploadHandlerParams{Storage: mockSvc.NewMockFileStorage(t)}),
		AuthMiddleware:        middleware.NewAuthMiddleware(f.tokenSvc),
		Registry:              reg,
		Config:                cfg,
	}).RegisterRoutes(f.e)

	return f
}

func (f routerFixtures) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func (f routerFixtures) tokenFor(token string, role entity.Role) uuid.UUID {
	userID := uuid.New()
	f.tokenSvc.EXPECT().
		ValidateToken(token, service.TokenTypeAccess).
		Return(&service.Claims{UserID: userID, Role: role, Type: service.TokenTypeAccess}, nil)

	return userID
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixtures(t)
	f.locationUC.EXPECT().ListAvailableLocations(mock.Anything).Return([]*entity.Location{}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/locations", "").Code)

	rec := f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	f := newRouterFixtures(t)

	for _, target := range []string{"/api/v1/profile", "/api/v1/businesses/mine", "/api/v1/notifications"} {
		assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, target, "").Code, target)
	}
}

func TestRouter_RoleGates(t *testing.T) {
	t.Run("user cannot read revenue", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.tokenFor("user-token", entity.RoleUser)

		assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/revenue/total", "user-token").Code)
	})

	t.Run("admin reads revenue", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.tokenFor("admin-token", entity.RoleAdmin)
		f.revenueUC.EXPECT().TotalRevenue(mock.Anything, mock.AnythingOfType("entity.Principal")).Return(&entity.Revenue{}, nil)

		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/revenue/total", "admin-token").Code)
	})

	t.Run("support cannot create locations", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.tokenFor("support-token", entity.RoleSupport)

		assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/v1/locations", "support-token").Code)
	})
}

func TestIsUploadRoute(t *testing.T) {
	e := echo.New()
	e.POST("/api/v1/tickets", func(c echo.Context) error {
		assert.True(t, IsUploadRoute(c))

		return c.NoContent(http.StatusNoContent)
	})
	e.POST("/api/v1/businesses", func(c echo.Context) error {
		assert.False(t, IsUploadRoute(c))

		return c.NoContent(http.StatusNoContent)
	})

	for _, target := range []string{"/api/v1/tickets", "/api/v1/businesses"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
