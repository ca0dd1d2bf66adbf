// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"licensing/config"
	"licensing/internal/delivery/api/middleware"
	"licensing/internal/delivery/api/router/handler"
	"licensing/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	ProfileHandler        *handler.ProfileHandler
	SupportAccountHandler *handler.SupportAccountHandler
	BusinessHandler       *handler.BusinessHandler
	LocationHandler       *handler.LocationHandler
	PaymentHandler        *handler.PaymentHandler
	RevenueHandler        *handler.RevenueHandler
	SupportHandler        *handler.SupportHandler
	NotificationHandler   *handler.NotificationHandler
	DeviceHandler         *handler.DeviceHandler
	UploadHandler         *handler.UploadHandler
	AuthMiddleware        *middleware.AuthMiddleware
	Registry              *prometheus.Registry
	Config                *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if m := r.Config.Metrics; m != nil && m.Enabled {
		e.GET(m.Path, echo.WrapHandler(promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.AuthHandler.Register)
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.POST("/refresh", r.AuthHandler.RefreshToken)
		authGroup.POST("/logout", r.AuthHandler.Logout)
		authGroup.POST("/forgot-password", r.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password/:token", r.AuthHandler.ResetPassword)
	}

	// Public reads
	e.GET("/api/v1/locations", r.LocationHandler.ListAvailableLocations)
	e.GET("/api/v1/notifications/push-config", r.NotificationHandler.PushConfig)
	e.GET(r.uploadsPath(), r.UploadHandler.Serve)

	auth := r.AuthMiddleware
	admin := auth.RequireRole(entity.RoleAdmin)
	support := auth.RequireRole(entity.RoleSupport)
	staff := auth.RequireRole(entity.RoleAdmin, entity.RoleSupport)
	uploadLimit := echomiddleware.BodyLimit(r.Config.HTTP.UploadBodySize)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(auth.Authenticate)

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.ProfileHandler.GetProfile)
		profileGroup.PUT("/username", r.ProfileHandler.UpdateUsername)
		profileGroup.PUT("/password", r.ProfileHandler.UpdatePassword)
	}
	apiV1.GET("/users", r.ProfileHandler.ListUsers)

	supportUsersGroup := apiV1.Group("/support-users", admin)
	{
		supportUsersGroup.POST("", r.SupportAccountHandler.CreateSupport)
		supportUsersGroup.GET("", r.SupportAccountHandler.ListSupport)
		supportUsersGroup.POST("/:id/deactivate", r.SupportAccountHandler.DeactivateSupport)
		supportUsersGroup.POST("/:id/reactivate", r.SupportAccountHandler.ReactivateSupport)
	}

	businessGroup := apiV1.Group("/businesses")
	{
		businessGroup.POST("", r.BusinessHandler.Register)
		businessGroup.GET("", r.BusinessHandler.ListApplications, admin)
		businessGroup.GET("/mine", r.BusinessHandler.MyApplication)
		businessGroup.PUT("/:id", r.BusinessHandler.Edit)
		businessGroup.PUT("/:id/status", r.BusinessHandler.UpdateStatus, admin)
		businessGroup.GET("/:id/contract", r.BusinessHandler.ActiveContract)
	}

	locationGroup := apiV1.Group("/locations")
	{
		locationGroup.POST("", r.LocationHandler.CreateLocation, admin)
		locationGroup.DELETE("/:id", r.LocationHandler.DeleteLocation, admin)
		locationGroup.POST("/:id/apply", r.LocationHandler.ApplyForLocation)
	}

	paymentGroup := apiV1.Group("/payments/:businessId")
	{
		paymentGroup.POST("/contract", r.PaymentHandler.InitiateContract)
		paymentGroup.POST("/rent", r.PaymentHandler.InitiateRent)
		paymentGroup.GET("/check/:reference", r.PaymentHandler.CheckStatus)
		paymentGroup.GET("/await/:reference", r.PaymentHandler.AwaitPayment)
		paymentGroup.GET("/status", r.PaymentHandler.Status)
		paymentGroup.GET("/rent-history", r.PaymentHandler.RentHistory)
		paymentGroup.GET("/rent-schedule", r.PaymentHandler.RentSchedule)
	}

	revenueGroup := apiV1.Group("/revenue", admin)
	{
		revenueGroup.GET("/total", r.RevenueHandler.TotalRevenue)
		revenueGroup.GET("/unpaid-businesses", r.RevenueHandler.UnpaidBusinesses)
	}

	ticketGroup := apiV1.Group("/tickets")
	{
		ticketGroup.POST("", r.SupportHandler.CreateTicket, uploadLimit)
		ticketGroup.GET("", r.SupportHandler.ListTickets, support)
		ticketGroup.GET("/mine", r.SupportHandler.MyTickets)
		ticketGroup.GET("/unanswered-count", r.SupportHandler.UnansweredCount, staff)
		ticketGroup.PUT("/:id/status", r.SupportHandler.UpdateTicketStatus, support)
		ticketGroup.PUT("/:id/assign", r.SupportHandler.AssignTicket, support)
	}

	reportGroup := apiV1.Group("/reports")
	{
		reportGroup.POST("", r.SupportHandler.CreateReport, uploadLimit)
		reportGroup.GET("", r.SupportHandler.ListReports, staff)
		reportGroup.GET("/mine", r.SupportHandler.MyReports)
		reportGroup.PUT("/:id/status", r.SupportHandler.UpdateReportStatus, support)
	}

	notificationGroup := apiV1.Group("/notifications")
	{
		notificationGroup.GET("", r.NotificationHandler.ListNotifications)
		notificationGroup.PUT("/:id/read", r.NotificationHandler.MarkRead)
	}

	deviceGroup := apiV1.Group("/devices")
	{
		deviceGroup.POST("", r.DeviceHandler.RegisterDevice)
		deviceGroup.GET("", r.DeviceHandler.GetUserDevices)
		deviceGroup.PUT("/:id/token", r.DeviceHandler.UpdateFCMToken)
		deviceGroup.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}
}

func (r *router) uploadsPath() string {
	base := r.Config.Storage.PublicBasePath
	if base == "" {
		base = "/uploads"
	}

	return base + "/*"
}

// IsUploadRoute reports whether c matched a multipart route with its own body limit.
func IsUploadRoute(c echo.Context) bool {
	if c.Request().Method != http.MethodPost {
		return false
	}

	switch c.Path() {
	case "/api/v1/tickets", "/api/v1/reports":
		return true
	}

	return false
}
