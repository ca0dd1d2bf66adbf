package usecase

import (
	"context"
	"io"

	"licensing/internal/domain/entity"

	"github.com/google/uuid"
)

// FileUpload is one attachment received with a ticket or report.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// CreateTicketInput defines the data required to raise a ticket.
type CreateTicketInput struct {
	Subject     string
	Description string
	Files       []FileUpload
}

// CreateReportInput defines the data required to report another user.
type CreateReportInput struct {
	ReportedUserID uuid.UUID
	Subject        string
	Description    string
	Files          []FileUpload
}

// StatusUpdateInput moves a ticket or report forward. Comment is recorded on resolution.
type StatusUpdateInput struct {
	Status  string
	Comment string
}

// TicketUsecase defines support ticket operations.
type TicketUsecase interface {
	CreateTicket(ctx context.Context, principal entity.Principal, input *CreateTicketInput) (*entity.Ticket, error)
	ListTickets(ctx context.Context, principal entity.Principal, status *entity.TicketStatus) ([]*entity.Ticket, error)
	MyTickets(ctx context.Context, principal entity.Principal) ([]*entity.Ticket, error)
	UpdateTicketStatus(ctx context.Context, principal entity.Principal, ticketID uuid.UUID, input *StatusUpdateInput) (*entity.Ticket, error)
	AssignTicket(ctx context.Context, principal entity.Principal, ticketID uuid.UUID) (*entity.Ticket, error)
	UnansweredCount(ctx context.Context, principal entity.Principal) (int64, error)
}

// ReportUsecase defines user report operations.
type ReportUsecase interface {
	CreateReport(ctx context.Context, principal entity.Principal, input *CreateReportInput) (*entity.UserReport, error)
	ListReports(ctx context.Context, principal entity.Principal) ([]*entity.UserReport, error)
	MyReports(ctx context.Context, principal entity.Principal) ([]*entity.UserReport, error)
	UpdateReportStatus(ctx context.Context, principal entity.Principal, reportID uuid.UUID, input *StatusUpdateInput) (*entity.UserReport, error)
}
