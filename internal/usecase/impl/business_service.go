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
	"licensing/internal/errors"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type businessService struct {
	businessRepo repository.BusinessRepository
	notifier     usecase.NotificationUsecase
	contractFee  decimal.Decimal
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Notifier     usecase.NotificationUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBusinessService creates the business application usecase.
func NewBusinessService(params BusinessServiceParams) (usecase.BusinessUsecase, error) {
	fee, err := decimal.NewFromString(params.Config.Billing.ContractFee)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid contract fee %q", params.Config.Billing.ContractFee)
	}

	return &businessService{
		businessRepo: params.BusinessRepo,
		notifier:     params.Notifier,
		contractFee:  fee,
		logger:       params.Logger,
	}, nil
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateApplication(input *usecase.ApplicationInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithField("name")
	}
	if strings.TrimSpace(input.JustificationText) == "" {
		return domainerrors.ErrValidationFailed.WithField("justificationText")
	}

	return nil
}

// Register submits a new application for the caller.
func (srv *businessService) Register(ctx context.Context, principal entity.Principal, input *usecase.ApplicationInput) (*entity.Business, error) {
	if err := validateApplication(input); err != nil {
		return nil, err
	}

	now := time.Now()
	business := &entity.Business{
		ID:                uuid.New(),
		OwnerID:           principal.UserID,
		Name:              strings.TrimSpace(input.Name),
		JustificationText: strings.TrimSpace(input.JustificationText),
		Status:            entity.BusinessStatusPending,
		ContractFee:       srv.contractFee,
		RentFee:           decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := srv.businessRepo.CreateBusiness(ctx, business); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return nil, domainerrors.ErrApplicationExists
		}

		return nil, errors.Wrap(err, "failed to create business application")
	}

	srv.log(ctx).Info("Business application submitted",
		slog.String("businessID", business.ID.String()),
		slog.String("ownerID", principal.UserID.String()))

	return business, nil
}

// ListApplications returns every application, optionally filtered by status.
func (srv *businessService) ListApplications(ctx context.Context, principal entity.Principal, status *entity.BusinessStatus) ([]*entity.Business, error) {
	if !principal.HasRole(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithField("status")
	}

	businesses, err := srv.businessRepo.ListBusinesses(ctx, repository.BusinessFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return businesses, nil
}

// MyApplication returns the caller's own application.
func (srv *businessService) MyApplication(ctx context.Context, principal entity.Principal) (*entity.Business, error) {
	business, err := srv.businessRepo.FindBusinessByOwner(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by owner")
	}

	return business, nil
}

// Edit updates an application that has not been approved yet.
func (srv *businessService) Edit(ctx context.Context, principal entity.Principal, businessID uuid.UUID, input *usecase.ApplicationInput) (*entity.Business, error) {
	if err := validateApplication(input); err != nil {
		return nil, err
	}

	business, err := srv.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	// Other owners' applications are reported as missing.
	if business.OwnerID != principal.UserID {
		return nil, domainerrors.ErrBusinessNotFound
	}
	if business.IsApproved() {
		return nil, domainerrors.ErrApplicationLocked
	}

	business.Name = strings.TrimSpace(input.Name)
	business.JustificationText = strings.TrimSpace(input.JustificationText)
	if business.Status == entity.BusinessStatusMoreInfoRequested {
		business.Status = entity.BusinessStatusPending
	}

	if err := srv.businessRepo.UpdateApplication(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to update business application")
	}

	return business, nil
}

// UpdateStatus records an admin decision and notifies the owner.
func (srv *businessService) UpdateStatus(ctx context.Context, principal entity.Principal, businessID uuid.UUID, input *usecase.ApplicationDecisionInput) (*entity.Business, error) {
	if !principal.HasRole(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithField("status")
	}

	approving := input.Status == entity.BusinessStatusApproved
	if approving && (input.RentFee == nil || !input.RentFee.IsPositive()) {
		return nil, domainerrors.ErrRentFeeRequired
	}

	business, err := srv.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	update := repository.BusinessStatusUpdate{
		ID:            business.ID,
		Status:        input.Status,
		AdminFeedback: input.AdminFeedback,
	}
	// The rent fee is fixed by the first approval.
	if approving && !business.IsApproved() {
		update.RentFee = input.RentFee
	}

	if err := srv.businessRepo.UpdateStatus(ctx, update); err != nil {
		return nil, errors.Wrap(err, "failed to update business status")
	}

	business.Status = input.Status
	business.AdminFeedback = input.AdminFeedback
	if update.RentFee != nil {
		business.RentFee = *update.RentFee
	}

	srv.log(ctx).Info("Business application decided",
		slog.String("businessID", business.ID.String()),
		slog.String("status", string(input.Status)))

	srv.notifyDecision(ctx, business)

	return business, nil
}

func (srv *businessService) notifyDecision(ctx context.Context, business *entity.Business) {
	var (
		title   string
		message string
		kind    entity.NotificationType
	)

	switch business.Status {
	case entity.BusinessStatusApproved:
		title, kind = "Application approved", entity.NotificationTypeSuccess
		message = "Your application for " + business.Name + " has been approved. You can now pay the contract fee."
	case entity.BusinessStatusRejected:
		title, kind = "Application rejected", entity.NotificationTypeError
		message = "Your application for " + business.Name + " has been rejected."
	case entity.BusinessStatusMoreInfoRequested:
		title, kind = "More information needed", entity.NotificationTypeWarning
		message = "Your application for " + business.Name + " needs more information."
	default:
		return
	}

	if business.AdminFeedback != "" {
		message += " Feedback: " + business.AdminFeedback
	}

	_, err := srv.notifier.Notify(ctx, &usecase.NotifyInput{
		RecipientID: business.OwnerID,
		Title:       title,
		Message:     message,
		Type:        kind,
		Link:        "/dashboard",
		Metadata:    map[string]any{"businessId": business.ID.String()},
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to notify owner about application decision",
			slog.String("businessID", business.ID.String()),
			slog.Any("error", err))
	}
}
