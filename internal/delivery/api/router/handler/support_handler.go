package handler

import (
	"log/slog"
	"net/http"

	"licensing/internal/delivery/api/response"
	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/errors"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SupportHandlerParams holds dependencies for SupportHandler, injected by Fx.
type SupportHandlerParams struct {
	fx.In

	TicketUC usecase.TicketUsecase
	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// SupportHandler serves support tickets and user reports.
type SupportHandler struct {
	ticketUC usecase.TicketUsecase
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewSupportHandler is the constructor for SupportHandler.
func NewSupportHandler(params SupportHandlerParams) *SupportHandler {
	return &SupportHandler{
		ticketUC: params.TicketUC,
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// CreateTicketRequest is the multipart form of a new ticket
type CreateTicketRequest struct {
	Subject     string `form:"subject" validate:"required,max=200"`
	Description string `form:"description" validate:"required"`
}

// CreateReportRequest is the multipart form of a new user report
type CreateReportRequest struct {
	ReportedUserID string `form:"reportedUserId" validate:"required,uuid"`
	Subject        string `form:"subject" validate:"required,max=200"`
	Description    string `form:"description" validate:"required"`
}

// StatusUpdateRequest moves a ticket or report forward
type StatusUpdateRequest struct {
	Status  string `json:"status" validate:"required"`
	Comment string `json:"comment"`
}

// CreateTicket raises a ticket with optional attachments.
func (h *SupportHandler) CreateTicket(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req CreateTicketRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	files, closeFiles, err := h.attachments(c)
	if err != nil {
		return err
	}
	defer h.closeAttachments(c, closeFiles)

	ticket, err := h.ticketUC.CreateTicket(c.Request().Context(), p, &usecase.CreateTicketInput{
		Subject:     req.Subject,
		Description: req.Description,
		Files:       files,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ticket)
}

// ListTickets returns every ticket, optionally filtered by ?status=.
func (h *SupportHandler) ListTickets(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var status *entity.TicketStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.TicketStatus(raw)
		if !s.IsValid() {
			return domainerrors.ErrValidationFailed.WithField("status")
		}
		status = &s
	}

	tickets, err := h.ticketUC.ListTickets(c.Request().Context(), p, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tickets)
}

func (h *SupportHandler) MyTickets(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	tickets, err := h.ticketUC.MyTickets(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tickets)
}

func (h *SupportHandler) UpdateTicketStatus(c echo.Context) error {
	p, ticketID, req, err := h.statusUpdate(c)
	if err != nil {
		return err
	}

	ticket, err := h.ticketUC.UpdateTicketStatus(c.Request().Context(), p, ticketID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ticket)
}

// AssignTicket assigns the ticket to the calling support member.
func (h *SupportHandler) AssignTicket(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	ticketID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	ticket, err := h.ticketUC.AssignTicket(c.Request().Context(), p, ticketID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ticket)
}

func (h *SupportHandler) UnansweredCount(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	count, err := h.ticketUC.UnansweredCount(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}

// CreateReport reports another user with optional attachments.
func (h *SupportHandler) CreateReport(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req CreateReportRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	files, closeFiles, err := h.attachments(c)
	if err != nil {
		return err
	}
	defer h.closeAttachments(c, closeFiles)

	report, err := h.reportUC.CreateReport(c.Request().Context(), p, &usecase.CreateReportInput{
		ReportedUserID: uuid.MustParse(req.ReportedUserID),
		Subject:        req.Subject,
		Description:    req.Description,
		Files:          files,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, report)
}

func (h *SupportHandler) ListReports(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	reports, err := h.reportUC.ListReports(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports)
}

func (h *SupportHandler) MyReports(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	reports, err := h.reportUC.MyReports(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports)
}

func (h *SupportHandler) UpdateReportStatus(c echo.Context) error {
	p, reportID, req, err := h.statusUpdate(c)
	if err != nil {
		return err
	}

	report, err := h.reportUC.UpdateReportStatus(c.Request().Context(), p, reportID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

func (h *SupportHandler) statusUpdate(c echo.Context) (entity.Principal, uuid.UUID, *usecase.StatusUpdateInput, error) {
	p, err := principal(c)
	if err != nil {
		return entity.Principal{}, uuid.Nil, nil, err
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return entity.Principal{}, uuid.Nil, nil, err
	}

	var req StatusUpdateRequest
	if err := bind(c, &req); err != nil {
		return entity.Principal{}, uuid.Nil, nil, err
	}

	return p, id, &usecase.StatusUpdateInput{Status: req.Status, Comment: req.Comment}, nil
}

// attachments accepts both multipart and plain form bodies; only multipart carries files.
func (h *SupportHandler) attachments(c echo.Context) ([]usecase.FileUpload, func() error, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, func() error { return nil }, nil
		}

		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("malformed multipart body")
	}

	files, closeFiles, err := openAttachments(form)
	if err != nil {
		return nil, nil, domainerrors.ErrAttachmentRejected.WithDetails(err.Error())
	}

	return files, closeFiles, nil
}

func (h *SupportHandler) closeAttachments(c echo.Context, closeFiles func() error) {
	if err := closeFiles(); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Failed to close uploaded attachments", slog.Any("error", err))
	}
}
