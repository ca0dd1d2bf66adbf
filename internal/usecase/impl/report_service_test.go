package impl

import (
	"context"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service    *reportService
	reportRepo *mockRepo.MockUserReportRepository
	userRepo   *mockRepo.MockUserRepository
	storage    *mockSvc.MockFileStorage
	notifier   *mockUsecase.MockNotificationUsecase
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	fx := reportServiceFixtures{
		reportRepo: mockRepo.NewMockUserReportRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		storage:    mockSvc.NewMockFileStorage(t),
		notifier:   mockUsecase.NewMockNotificationUsecase(t),
	}

	srv := NewReportService(ReportServiceParams{
		ReportRepo: fx.reportRepo,
		UserRepo:   fx.userRepo,
		Storage:    fx.storage,
		Notifier:   fx.notifier,
		Config:     newTestConfig(0),
		Logger:     newDiscardLogger(),
	}).(*reportService)
	srv.now = func() time.Time { return ticketNow }
	fx.service = srv

	return fx
}

func TestReportService_CreateReport(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	reporter := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	reported := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, reported).Return(&entity.User{ID: reported}, nil)
	fx.storage.EXPECT().Save(ctx, mock.Anything, mock.Anything, "image/jpeg").RunAndReturn(drainingSave)
	fx.reportRepo.EXPECT().
		CreateReport(ctx, mock.MatchedBy(func(report *entity.UserReport) bool {
			return report.ReporterID == reporter.UserID && report.ReportedUserID == reported && report.Status == entity.ReportStatusPending
		})).
		Return(nil)

	report, err := fx.service.CreateReport(ctx, reporter, &usecase.CreateReportInput{
		ReportedUserID: reported,
		Subject:        "Blocking my stall",
		Description:    "Parks a truck in front of stall 12 every morning.",
		Files:          []usecase.FileUpload{upload("truck.jpg", "image/jpeg", "jpg")},
	})
	require.NoError(t, err)
	require.Len(t, report.Attachments, 1)
	assert.Contains(t, report.Attachments[0].Path, "/uploads/user-reports/"+report.ID.String())
}

func TestReportService_CreateReport_UnknownUser(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	reported := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, reported).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CreateReport(ctx, entity.Principal{UserID: uuid.New()}, &usecase.CreateReportInput{
		ReportedUserID: reported,
		Subject:        "Subject",
		Description:    "Description",
	})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestReportService_ListReports(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.reportRepo.EXPECT().ListReports(ctx).Return([]*entity.UserReport{{ID: uuid.New()}}, nil).Twice()

	for _, principal := range []entity.Principal{adminPrincipal, supportPrincipal} {
		reports, err := fx.service.ListReports(ctx, principal)
		require.NoError(t, err)
		assert.Len(t, reports, 1)
	}

	_, err := fx.service.ListReports(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleUser})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReportService_MyReports(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	reporter := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}

	fx.reportRepo.EXPECT().ListReportsByReporter(ctx, reporter.UserID).Return([]*entity.UserReport{}, nil)

	reports, err := fx.service.MyReports(ctx, reporter)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestReportService_UpdateReportStatus(t *testing.T) {
	tests := []struct {
		name       string
		current    entity.ReportStatus
		next       string
		wantNotify bool
		wantErr    error
	}{
		{name: "under review notifies", current: entity.ReportStatusPending, next: "under-review", wantNotify: true},
		{name: "resolved notifies", current: entity.ReportStatusUnderReview, next: "resolved", wantNotify: true},
		{name: "archive is silent", current: entity.ReportStatusResolved, next: "archived"},
		{name: "backwards rejected", current: entity.ReportStatusArchived, next: "under-review", wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "same status rejected", current: entity.ReportStatusResolved, next: "resolved", wantErr: domainerrors.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReportService(t)
			ctx := context.Background()
			report := &entity.UserReport{ID: uuid.New(), ReporterID: uuid.New(), Status: tt.current}

			fx.reportRepo.EXPECT().FindReportByID(ctx, report.ID).Return(report, nil)
			if tt.wantErr == nil {
				fx.reportRepo.EXPECT().UpdateReportStatus(ctx, report).Return(nil)
			}
			if tt.wantNotify {
				fx.notifier.EXPECT().
					Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool { return in.RecipientID == report.ReporterID })).
					Return(&entity.Notification{}, nil)
			}

			updated, err := fx.service.UpdateReportStatus(ctx, supportPrincipal, report.ID, &usecase.StatusUpdateInput{Status: tt.next, Comment: "done"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.ReportStatus(tt.next), updated.Status)
			assert.Equal(t, tt.next == "resolved", updated.Resolution != nil)
		})
	}
}

func TestReportService_UpdateReportStatus_NotFound(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.reportRepo.EXPECT().FindReportByID(ctx, id).Return(nil, repository.ErrReportNotFound)

	_, err := fx.service.UpdateReportStatus(ctx, supportPrincipal, id, &usecase.StatusUpdateInput{Status: "resolved"})
	require.ErrorIs(t, err, domainerrors.ErrReportNotFound)
}
