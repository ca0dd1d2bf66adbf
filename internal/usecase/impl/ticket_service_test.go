package impl

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	mockRepo "licensing/internal/mocks/repository"
	mockSvc "licensing/internal/mocks/service"
	mockUsecase "licensing/internal/mocks/usecase"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	supportPrincipal = entity.Principal{UserID: uuid.New(), Role: entity.RoleSupport}
	ticketNow        = time.Date(2026, time.April, 2, 8, 30, 0, 0, time.UTC)
)

type ticketServiceFixtures struct {
	service    *ticketService
	ticketRepo *mockRepo.MockTicketRepository
	storage    *mockSvc.MockFileStorage
	notifier   *mockUsecase.MockNotificationUsecase
}

func createTestTicketService(t *testing.T) ticketServiceFixtures {
	fx := ticketServiceFixtures{
		ticketRepo: mockRepo.NewMockTicketRepository(t),
		storage:    mockSvc.NewMockFileStorage(t),
		notifier:   mockUsecase.NewMockNotificationUsecase(t),
	}

	srv := NewTicketService(TicketServiceParams{
		TicketRepo: fx.ticketRepo,
		Storage:    fx.storage,
		Notifier:   fx.notifier,
		Config:     newTestConfig(0),
		Logger:     newDiscardLogger(),
	}).(*ticketService)
	srv.now = func() time.Time { return ticketNow }
	fx.service = srv

	return fx
}

func upload(name, contentType, body string) usecase.FileUpload {
	return usecase.FileUpload{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

func drainingSave(ctx context.Context, key string, r io.Reader, _ string) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}

	return "/uploads/" + key, nil
}

func TestTicketService_CreateTicket(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()
	author := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}

	fx.storage.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "tickets/") && strings.HasSuffix(key, ".png") }), mock.Anything, "image/png").
		RunAndReturn(drainingSave)
	fx.ticketRepo.EXPECT().
		CreateTicket(ctx, mock.MatchedBy(func(ticket *entity.Ticket) bool {
			return ticket.UserID == author.UserID && ticket.Status == entity.TicketStatusPending && len(ticket.Attachments) == 1
		})).
		Return(nil)

	ticket, err := fx.service.CreateTicket(ctx, author, &usecase.CreateTicketInput{
		Subject:     " Cannot pay rent ",
		Description: "The payment page never loads.",
		Files:       []usecase.FileUpload{upload("Screenshot.PNG", "image/png", "png-bytes")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cannot pay rent", ticket.Subject)
	assert.Equal(t, "Screenshot.PNG", ticket.Attachments[0].Filename)
	assert.True(t, strings.HasPrefix(ticket.Attachments[0].Path, "/uploads/tickets/"+ticket.ID.String()))
	assert.Equal(t, ticketNow, ticket.CreatedAt)
}

func TestTicketService_CreateTicket_RejectsAttachments(t *testing.T) {
	author := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}

	tests := []struct {
		name  string
		files []usecase.FileUpload
	}{
		{
			name:  "disallowed extension",
			files: []usecase.FileUpload{upload("run.exe", "application/octet-stream", "MZ")},
		},
		{
			name:  "declared size over limit",
			files: []usecase.FileUpload{{Filename: "scan.pdf", ContentType: "application/pdf", Size: 6 << 20, Body: strings.NewReader("")}},
		},
		{
			name: "too many files",
			files: []usecase.FileUpload{
				upload("1.jpg", "image/jpeg", "a"), upload("2.jpg", "image/jpeg", "b"), upload("3.jpg", "image/jpeg", "c"),
				upload("4.jpg", "image/jpeg", "d"), upload("5.jpg", "image/jpeg", "e"), upload("6.jpg", "image/jpeg", "f"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTicketService(t)

			_, err := fx.service.CreateTicket(context.Background(), author, &usecase.CreateTicketInput{
				Subject:     "Subject",
				Description: "Description",
				Files:       tt.files,
			})
			require.ErrorIs(t, err, domainerrors.ErrAttachmentRejected)
		})
	}
}

func TestTicketService_CreateTicket_RemovesFilesWhenPersistFails(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()

	var savedKey string
	fx.storage.EXPECT().
		Save(ctx, mock.Anything, mock.Anything, "application/pdf").
		RunAndReturn(func(ctx context.Context, key string, r io.Reader, ct string) (string, error) {
			savedKey = key

			return drainingSave(ctx, key, r, ct)
		})
	fx.ticketRepo.EXPECT().CreateTicket(ctx, mock.Anything).Return(errors.New("connection reset"))
	fx.storage.EXPECT().
		Delete(ctx, mock.MatchedBy(func(key string) bool { return key == savedKey })).
		Return(nil)

	_, err := fx.service.CreateTicket(ctx, entity.Principal{UserID: uuid.New()}, &usecase.CreateTicketInput{
		Subject:     "Subject",
		Description: "Description",
		Files:       []usecase.FileUpload{upload("lease.pdf", "application/pdf", "%PDF")},
	})
	require.Error(t, err)
}

func TestTicketService_CreateTicket_RequiresSubject(t *testing.T) {
	fx := createTestTicketService(t)

	_, err := fx.service.CreateTicket(context.Background(), entity.Principal{UserID: uuid.New()}, &usecase.CreateTicketInput{Description: "x"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTicketService_ListTickets_SupportOnly(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()

	_, err := fx.service.ListTickets(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}, nil)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	pending := entity.TicketStatusPending
	fx.ticketRepo.EXPECT().ListTickets(ctx, &pending).Return([]*entity.Ticket{{ID: uuid.New()}}, nil)

	tickets, err := fx.service.ListTickets(ctx, supportPrincipal, &pending)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}

func TestTicketService_UpdateTicketStatus_Resolve(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()
	ticket := &entity.Ticket{ID: uuid.New(), UserID: uuid.New(), Status: entity.TicketStatusInProgress}

	fx.ticketRepo.EXPECT().FindTicketByID(ctx, ticket.ID).Return(ticket, nil)
	fx.ticketRepo.EXPECT().UpdateTicketStatus(ctx, ticket).Return(nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.RecipientID == ticket.UserID && in.Title == "Ticket Updated"
		})).
		Return(&entity.Notification{}, nil)

	updated, err := fx.service.UpdateTicketStatus(ctx, supportPrincipal, ticket.ID, &usecase.StatusUpdateInput{
		Status:  "resolved",
		Comment: "Gateway outage fixed",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusResolved, updated.Status)
	require.NotNil(t, updated.Resolution)
	assert.Equal(t, supportPrincipal.UserID, updated.Resolution.ResolvedBy)
	assert.Equal(t, ticketNow, updated.Resolution.ResolvedAt)
}

func TestTicketService_UpdateTicketStatus_ArchiveDoesNotNotify(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()
	ticket := &entity.Ticket{ID: uuid.New(), Status: entity.TicketStatusResolved}

	fx.ticketRepo.EXPECT().FindTicketByID(ctx, ticket.ID).Return(ticket, nil)
	fx.ticketRepo.EXPECT().UpdateTicketStatus(ctx, ticket).Return(nil)

	updated, err := fx.service.UpdateTicketStatus(ctx, supportPrincipal, ticket.ID, &usecase.StatusUpdateInput{Status: "archived"})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusArchived, updated.Status)
}

func TestTicketService_UpdateTicketStatus_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("backwards move", func(t *testing.T) {
		fx := createTestTicketService(t)
		ticket := &entity.Ticket{ID: uuid.New(), Status: entity.TicketStatusResolved}
		fx.ticketRepo.EXPECT().FindTicketByID(ctx, ticket.ID).Return(ticket, nil)

		_, err := fx.service.UpdateTicketStatus(ctx, supportPrincipal, ticket.ID, &usecase.StatusUpdateInput{Status: "pending"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})

	t.Run("resolving twice keeps the first resolution", func(t *testing.T) {
		fx := createTestTicketService(t)
		resolvedBy := uuid.New()
		resolvedAt := ticketNow.Add(-time.Hour)
		ticket := &entity.Ticket{
			ID:         uuid.New(),
			Status:     entity.TicketStatusResolved,
			Resolution: &entity.Resolution{Comment: "fixed", ResolvedAt: resolvedAt, ResolvedBy: resolvedBy},
		}
		fx.ticketRepo.EXPECT().FindTicketByID(ctx, ticket.ID).Return(ticket, nil)

		_, err := fx.service.UpdateTicketStatus(ctx, supportPrincipal, ticket.ID, &usecase.StatusUpdateInput{Status: "resolved", Comment: "again"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
		assert.Equal(t, resolvedBy, ticket.Resolution.ResolvedBy)
		assert.Equal(t, resolvedAt, ticket.Resolution.ResolvedAt)
		assert.Equal(t, "fixed", ticket.Resolution.Comment)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestTicketService(t)

		_, err := fx.service.UpdateTicketStatus(ctx, supportPrincipal, uuid.New(), &usecase.StatusUpdateInput{Status: "closed"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing ticket", func(t *testing.T) {
		fx := createTestTicketService(t)
		id := uuid.New()
		fx.ticketRepo.EXPECT().FindTicketByID(ctx, id).Return(nil, repository.ErrTicketNotFound)

		_, err := fx.service.UpdateTicketStatus(ctx, supportPrincipal, id, &usecase.StatusUpdateInput{Status: "resolved"})
		require.ErrorIs(t, err, domainerrors.ErrTicketNotFound)
	})

	t.Run("admin is not support", func(t *testing.T) {
		fx := createTestTicketService(t)

		_, err := fx.service.UpdateTicketStatus(ctx, adminPrincipal, uuid.New(), &usecase.StatusUpdateInput{Status: "resolved"})
		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestTicketService_AssignTicket(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.ticketRepo.EXPECT().AssignTicket(ctx, id, supportPrincipal.UserID).Return(nil)
	fx.ticketRepo.EXPECT().
		FindTicketByID(ctx, id).
		Return(&entity.Ticket{ID: id, Status: entity.TicketStatusInProgress, AssignedTo: &supportPrincipal.UserID}, nil)

	ticket, err := fx.service.AssignTicket(ctx, supportPrincipal, id)
	require.NoError(t, err)
	assert.Equal(t, supportPrincipal.UserID, *ticket.AssignedTo)
}

func TestTicketService_AssignTicket_AlreadyAssigned(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.ticketRepo.EXPECT().AssignTicket(ctx, id, supportPrincipal.UserID).Return(repository.ErrTicketAlreadyAssigned)

	_, err := fx.service.AssignTicket(ctx, supportPrincipal, id)
	require.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestTicketService_UnansweredCount(t *testing.T) {
	fx := createTestTicketService(t)
	ctx := context.Background()

	fx.ticketRepo.EXPECT().CountTicketsByStatus(ctx, entity.TicketStatusPending).Return(int64(4), nil)

	count, err := fx.service.UnansweredCount(ctx, adminPrincipal)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	_, err = fx.service.UnansweredCount(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleUser})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}
