package repository

import (
	"context"

	"licensing/internal/domain/entity"
	"licensing/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for ticket and report persistence.
var (
	// ErrTicketNotFound is returned when a ticket is not found.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrTicketAlreadyAssigned is returned when another support user already owns the ticket.
	ErrTicketAlreadyAssigned = errors.New("ticket already assigned")
	// ErrReportNotFound is returned when a user report is not found.
	ErrReportNotFound = errors.New("report not found")
)

// TicketRepository defines the interface for ticket persistence.
type TicketRepository interface {
	// CreateTicket persists a new ticket.
	CreateTicket(ctx context.Context, ticket *entity.Ticket) error

	// FindTicketByID retrieves a ticket by ID.
	FindTicketByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)

	// ListTickets returns tickets with their author, newest first, optionally filtered by status.
	ListTickets(ctx context.Context, status *entity.TicketStatus) ([]*entity.Ticket, error)

	// ListTicketsByUser returns the tickets raised by a user, newest first.
	ListTicketsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Ticket, error)

	// UpdateTicketStatus writes status and resolution.
	UpdateTicketStatus(ctx context.Context, ticket *entity.Ticket) error

	// AssignTicket sets assigned_to once and moves the ticket to in-progress.
	// Returns ErrTicketAlreadyAssigned if someone else holds it.
	AssignTicket(ctx context.Context, id, assignee uuid.UUID) error

	// CountTicketsByStatus counts tickets in a status.
	CountTicketsByStatus(ctx context.Context, status entity.TicketStatus) (int64, error)
}

// UserReportRepository defines the interface for user report persistence.
type UserReportRepository interface {
	// CreateReport persists a new report.
	CreateReport(ctx context.Context, report *entity.UserReport) error

	// FindReportByID retrieves a report by ID.
	FindReportByID(ctx context.Context, id uuid.UUID) (*entity.UserReport, error)

	// ListReports returns reports with reporter and reported user, newest first.
	ListReports(ctx context.Context) ([]*entity.UserReport, error)

	// ListReportsByReporter returns reports filed by a user, newest first.
	ListReportsByReporter(ctx context.Context, reporterID uuid.UUID) ([]*entity.UserReport, error)

	// UpdateReportStatus writes status and resolution.
	UpdateReportStatus(ctx context.Context, report *entity.UserReport) error
}
