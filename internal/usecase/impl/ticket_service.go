package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"licensing/config"
	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/domain/service"
	"licensing/internal/errors"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type ticketService struct {
	ticketRepo  repository.TicketRepository
	attachments *attachmentStore
	notifier    usecase.NotificationUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// TicketServiceParams holds dependencies for TicketService, injected by Fx.
type TicketServiceParams struct {
	fx.In

	TicketRepo repository.TicketRepository
	Storage    service.FileStorage
	Notifier   usecase.NotificationUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// NewTicketService creates the support ticket usecase.
func NewTicketService(params TicketServiceParams) usecase.TicketUsecase {
	return &ticketService{
		ticketRepo:  params.TicketRepo,
		attachments: newAttachmentStore(params.Storage, params.Config),
		notifier:    params.Notifier,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *ticketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTicket stores the attachments and opens a pending ticket.
func (srv *ticketService) CreateTicket(ctx context.Context, principal entity.Principal, input *usecase.CreateTicketInput) (*entity.Ticket, error) {
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return nil, domainerrors.ErrValidationFailed.WithField("subject")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerrors.ErrValidationFailed.WithField("description")
	}

	id := uuid.New()
	attachments, keys, err := srv.attachments.save(ctx, srv.log(ctx), "tickets/"+id.String(), input.Files)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	ticket := &entity.Ticket{
		ID:          id,
		UserID:      principal.UserID,
		Subject:     subject,
		Description: description,
		Attachments: attachments,
		Status:      entity.TicketStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.ticketRepo.CreateTicket(ctx, ticket); err != nil {
		srv.attachments.remove(ctx, srv.log(ctx), keys)

		return nil, errors.Wrap(err, "failed to create ticket")
	}

	srv.log(ctx).Info("Ticket created",
		slog.String("ticketID", ticket.ID.String()),
		slog.Int("attachments", len(attachments)))

	return ticket, nil
}

// ListTickets returns every ticket, optionally filtered by status.
func (srv *ticketService) ListTickets(ctx context.Context, principal entity.Principal, status *entity.TicketStatus) ([]*entity.Ticket, error) {
	if !principal.HasRole(entity.RoleSupport) {
		return nil, domainerrors.ErrForbidden
	}
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithField("status")
	}

	tickets, err := srv.ticketRepo.ListTickets(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	return tickets, nil
}

// MyTickets returns the tickets raised by the caller.
func (srv *ticketService) MyTickets(ctx context.Context, principal entity.Principal) ([]*entity.Ticket, error) {
	tickets, err := srv.ticketRepo.ListTicketsByUser(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user tickets")
	}

	return tickets, nil
}

// UpdateTicketStatus moves a ticket forward and tells its author on progress or resolution.
func (srv *ticketService) UpdateTicketStatus(ctx context.Context, principal entity.Principal, ticketID uuid.UUID, input *usecase.StatusUpdateInput) (*entity.Ticket, error) {
	if !principal.HasRole(entity.RoleSupport) {
		return nil, domainerrors.ErrForbidden
	}

	next := entity.TicketStatus(input.Status)
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithField("status")
	}

	ticket, err := srv.findTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if !ticket.Status.CanMoveTo(next) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(string(ticket.Status) + " -> " + string(next))
	}

	now := srv.now()
	ticket.Status = next
	ticket.UpdatedAt = now
	if next == entity.TicketStatusResolved {
		ticket.Resolution = &entity.Resolution{
			Comment:    input.Comment,
			ResolvedAt: now,
			ResolvedBy: principal.UserID,
		}
	}

	if err := srv.ticketRepo.UpdateTicketStatus(ctx, ticket); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, domainerrors.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to update ticket status")
	}

	if next == entity.TicketStatusResolved || next == entity.TicketStatusInProgress {
		srv.notifyAuthor(ctx, ticket)
	}

	return ticket, nil
}

// AssignTicket hands a ticket to the calling support user.
func (srv *ticketService) AssignTicket(ctx context.Context, principal entity.Principal, ticketID uuid.UUID) (*entity.Ticket, error) {
	if !principal.HasRole(entity.RoleSupport) {
		return nil, domainerrors.ErrForbidden
	}

	if err := srv.ticketRepo.AssignTicket(ctx, ticketID, principal.UserID); err != nil {
		switch {
		case errors.Is(err, repository.ErrTicketNotFound):
			return nil, domainerrors.ErrTicketNotFound
		case errors.Is(err, repository.ErrTicketAlreadyAssigned):
			return nil, domainerrors.ErrConflict.WithDetails("ticket already assigned")
		default:
			return nil, errors.Wrap(err, "failed to assign ticket")
		}
	}

	return srv.findTicket(ctx, ticketID)
}

// UnansweredCount counts pending tickets.
func (srv *ticketService) UnansweredCount(ctx context.Context, principal entity.Principal) (int64, error) {
	if !principal.HasRole(entity.RoleAdmin, entity.RoleSupport) {
		return 0, domainerrors.ErrForbidden
	}

	count, err := srv.ticketRepo.CountTicketsByStatus(ctx, entity.TicketStatusPending)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pending tickets")
	}

	return count, nil
}

func (srv *ticketService) findTicket(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	ticket, err := srv.ticketRepo.FindTicketByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, domainerrors.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket")
	}

	return ticket, nil
}

func (srv *ticketService) notifyAuthor(ctx context.Context, ticket *entity.Ticket) {
	_, err := srv.notifier.Notify(ctx, &usecase.NotifyInput{
		RecipientID: ticket.UserID,
		Title:       "Ticket Updated",
		Message:     "Your ticket #" + ticket.ID.String() + " has been updated",
		Type:        entity.NotificationTypeInfo,
		Link:        "/dashboard",
		Metadata:    map[string]any{"ticketId": ticket.ID.String()},
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to notify ticket author",
			slog.String("ticketID", ticket.ID.String()),
			slog.Any("error", err))
	}
}
