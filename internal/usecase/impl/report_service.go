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

type reportService struct {
	reportRepo  repository.UserReportRepository
	userRepo    repository.UserRepository
	attachments *attachmentStore
	notifier    usecase.NotificationUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.UserReportRepository
	UserRepo   repository.UserRepository
	Storage    service.FileStorage
	Notifier   usecase.NotificationUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReportService creates the user report usecase.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo:  params.ReportRepo,
		userRepo:    params.UserRepo,
		attachments: newAttachmentStore(params.Storage, params.Config),
		notifier:    params.Notifier,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReport files a complaint against an existing user.
func (srv *reportService) CreateReport(ctx context.Context, principal entity.Principal, input *usecase.CreateReportInput) (*entity.UserReport, error) {
	if input.ReportedUserID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithField("reportedUserId")
	}
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return nil, domainerrors.ErrValidationFailed.WithField("subject")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerrors.ErrValidationFailed.WithField("description")
	}

	if _, err := srv.userRepo.FindUserByID(ctx, input.ReportedUserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("reported user not found")
		}

		return nil, errors.Wrap(err, "failed to find reported user")
	}

	id := uuid.New()
	attachments, keys, err := srv.attachments.save(ctx, srv.log(ctx), "user-reports/"+id.String(), input.Files)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	report := &entity.UserReport{
		ID:             id,
		ReporterID:     principal.UserID,
		ReportedUserID: input.ReportedUserID,
		Subject:        subject,
		Description:    description,
		Attachments:    attachments,
		Status:         entity.ReportStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.reportRepo.CreateReport(ctx, report); err != nil {
		srv.attachments.remove(ctx, srv.log(ctx), keys)

		return nil, errors.Wrap(err, "failed to create report")
	}

	return report, nil
}

// ListReports returns every report for support and admins.
func (srv *reportService) ListReports(ctx context.Context, principal entity.Principal) ([]*entity.UserReport, error) {
	if !principal.HasRole(entity.RoleSupport, entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}

	reports, err := srv.reportRepo.ListReports(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return reports, nil
}

// MyReports returns the reports filed by the caller.
func (srv *reportService) MyReports(ctx context.Context, principal entity.Principal) ([]*entity.UserReport, error) {
	reports, err := srv.reportRepo.ListReportsByReporter(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user reports")
	}

	return reports, nil
}

// UpdateReportStatus moves a report forward and tells the reporter on review or resolution.
func (srv *reportService) UpdateReportStatus(ctx context.Context, principal entity.Principal, reportID uuid.UUID, input *usecase.StatusUpdateInput) (*entity.UserReport, error) {
	if !principal.HasRole(entity.RoleSupport) {
		return nil, domainerrors.ErrForbidden
	}

	next := entity.ReportStatus(input.Status)
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithField("status")
	}

	report, err := srv.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	if !report.Status.CanMoveTo(next) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(string(report.Status) + " -> " + string(next))
	}

	now := srv.now()
	report.Status = next
	report.UpdatedAt = now
	if next == entity.ReportStatusResolved {
		report.Resolution = &entity.Resolution{
			Comment:    input.Comment,
			ResolvedAt: now,
			ResolvedBy: principal.UserID,
		}
	}

	if err := srv.reportRepo.UpdateReportStatus(ctx, report); err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to update report status")
	}

	if next == entity.ReportStatusResolved || next == entity.ReportStatusUnderReview {
		_, err := srv.notifier.Notify(ctx, &usecase.NotifyInput{
			RecipientID: report.ReporterID,
			Title:       "Feedback on user report",
			Message:     "New response on user report #" + report.ID.String(),
			Type:        entity.NotificationTypeInfo,
			Link:        "/dashboard",
			Metadata:    map[string]any{"reportId": report.ID.String()},
		})
		if err != nil {
			srv.log(ctx).Warn("Failed to notify reporter",
				slog.String("reportID", report.ID.String()),
				slog.Any("error", err))
		}
	}

	return report, nil
}
