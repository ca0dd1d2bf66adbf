package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"licensing/config"
	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/billing"
	"licensing/internal/domain/entity"
	"licensing/internal/domain/repository"
	"licensing/internal/domain/service"
	"licensing/internal/errors"
	"licensing/internal/infra/metrics"
	"licensing/internal/usecase"

	"go.uber.org/fx"
)

const (
	sweepContractExpiry = "contract_expiry"
	sweepRentReminder   = "rent_reminder"
	sweepRentOverdue    = "rent_overdue"
)

type reminderService struct {
	businessRepo repository.BusinessRepository
	contractRepo repository.ContractRepository
	rentRepo     repository.RentRepository
	userRepo     repository.UserRepository
	mailer       service.Mailer
	notifier     usecase.NotificationUsecase
	metrics      *metrics.Metrics
	dueDay       int
	logger       *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	ContractRepo repository.ContractRepository
	RentRepo     repository.RentRepository
	UserRepo     repository.UserRepository
	Mailer       service.Mailer
	Notifier     usecase.NotificationUsecase
	Metrics      *metrics.Metrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReminderService creates the scheduled reminder usecase.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	dueDay := billing.DefaultDueDay
	if params.Config != nil && params.Config.Billing != nil {
		dueDay = params.Config.Billing.RentDueDay
	}

	return &reminderService{
		businessRepo: params.BusinessRepo,
		contractRepo: params.ContractRepo,
		rentRepo:     params.RentRepo,
		userRepo:     params.UserRepo,
		mailer:       params.Mailer,
		notifier:     params.Notifier,
		metrics:      params.Metrics,
		dueDay:       dueDay,
		logger:       params.Logger,
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SweepContractExpiry reminds owners of paid contracts expiring on one of the reminder offsets.
func (srv *reminderService) SweepContractExpiry(ctx context.Context, now time.Time) (*usecase.SweepReport, error) {
	contracts, err := srv.contractRepo.ListContractsExpiringBetween(ctx, now, now.Add(billing.ContractExpiryWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expiring contracts")
	}

	report := &usecase.SweepReport{}

	for _, contract := range contracts {
		if contract.Expiry == nil {
			continue
		}

		daysLeft, ok := billing.ShouldRemindExpiry(now, *contract.Expiry)
		if !ok {
			continue
		}
		report.Scanned++

		if err := srv.remindContractExpiry(ctx, contract, daysLeft); err != nil {
			report.Failed++
			srv.metrics.SweepNotice(sweepContractExpiry, "failed")
			srv.log(ctx).Error("Failed to send contract expiry reminder",
				slog.String("contractID", contract.ID.String()),
				slog.Int("daysLeft", daysLeft),
				slog.Any("error", err))

			continue
		}

		report.Sent++
		srv.metrics.SweepNotice(sweepContractExpiry, "sent")
	}

	srv.log(ctx).Info("Contract expiry sweep finished",
		slog.Int("candidates", len(contracts)),
		slog.Int("scanned", report.Scanned),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed))

	return report, nil
}

func (srv *reminderService) remindContractExpiry(ctx context.Context, contract *entity.Contract, daysLeft int) error {
	business, err := srv.businessRepo.FindBusinessByID(ctx, contract.BusinessID)
	if err != nil {
		return errors.Wrap(err, "failed to find business")
	}

	owner, err := srv.ownerOf(ctx, business)
	if err != nil {
		return err
	}

	err = srv.mailer.SendContractExpiry(ctx, owner.Email, service.ContractExpiryMail{
		Username:     owner.Username,
		BusinessName: business.Name,
		Expiry:       *contract.Expiry,
		DaysLeft:     daysLeft,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send contract expiry mail")
	}

	_, err = srv.notifier.Notify(ctx, &usecase.NotifyInput{
		RecipientID: business.OwnerID,
		Title:       "Contract expiring soon",
		Message:     fmt.Sprintf("The contract for %s expires in %d day(s) on %s.", business.Name, daysLeft, contract.Expiry.Format(time.DateOnly)),
		Type:        entity.NotificationTypeWarning,
		Link:        "/dashboard",
		Metadata:    map[string]any{"businessId": business.ID.String(), "daysLeft": daysLeft},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create contract expiry notification")
	}

	return nil
}

// SweepRent sends a pre-due reminder or an overdue notice for the current rent month.
func (srv *reminderService) SweepRent(ctx context.Context, now time.Time) (*usecase.SweepReport, error) {
	month := billing.RentMonth(now)
	due := billing.DueDate(month, srv.dueDay)
	report := &usecase.SweepReport{}

	kind, days := billing.RentNotice(now, due)
	if kind == billing.RentNoticeNone {
		return report, nil
	}

	approved := entity.BusinessStatusApproved
	businesses, err := srv.businessRepo.ListBusinesses(ctx, repository.BusinessFilter{Status: &approved})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved businesses")
	}

	sweep := sweepRentReminder
	if kind == billing.RentNoticeOverdue {
		sweep = sweepRentOverdue
	}

	for _, business := range businesses {
		rent, err := srv.rentRepo.FindRent(ctx, business.ID, month)
		switch {
		case err == nil && rent.IsPaid():
			continue
		case err != nil && !errors.Is(err, repository.ErrRentNotFound):
			report.Scanned++
			report.Failed++
			srv.metrics.SweepNotice(sweep, "failed")
			srv.log(ctx).Error("Failed to load rent for reminder",
				slog.String("businessID", business.ID.String()),
				slog.Any("error", err))

			continue
		case err != nil:
			rent = nil
		}
		report.Scanned++

		if err := srv.remindRent(ctx, business, rent, kind, due, days); err != nil {
			report.Failed++
			srv.metrics.SweepNotice(sweep, "failed")
			srv.log(ctx).Error("Failed to send rent notice",
				slog.String("businessID", business.ID.String()),
				slog.String("sweep", sweep),
				slog.Any("error", err))

			continue
		}

		report.Sent++
		srv.metrics.SweepNotice(sweep, "sent")
	}

	srv.log(ctx).Info("Rent sweep finished",
		slog.String("sweep", sweep),
		slog.String("month", month.Format("2006-01")),
		slog.Int("days", days),
		slog.Int("scanned", report.Scanned),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed))

	return report, nil
}

func (srv *reminderService) remindRent(ctx context.Context, business *entity.Business, rent *entity.Rent, kind billing.RentNoticeKind, due time.Time, days int) error {
	owner, err := srv.ownerOf(ctx, business)
	if err != nil {
		return err
	}

	amount := business.RentFee
	if rent != nil {
		amount = rent.Amount
	}

	input := &usecase.NotifyInput{
		RecipientID: business.OwnerID,
		Link:        "/dashboard",
		Metadata:    map[string]any{"businessId": business.ID.String(), "month": due.Format("2006-01")},
	}

	if kind == billing.RentNoticeOverdue {
		if rent != nil && rent.Status == entity.RentStatusPending {
			if err := srv.rentRepo.MarkRentOverdue(ctx, rent.ID); err != nil {
				return errors.Wrap(err, "failed to mark rent overdue")
			}
		}

		err = srv.mailer.SendRentOverdue(ctx, owner.Email, service.RentOverdueMail{
			Username:     owner.Username,
			BusinessName: business.Name,
			Amount:       amount,
			DueDate:      due,
			DaysOverdue:  days,
		})
		if err != nil {
			return errors.Wrap(err, "failed to send rent overdue mail")
		}

		input.Title = "Rent overdue"
		input.Message = fmt.Sprintf("Rent of %s for %s is %d day(s) overdue.", amount.StringFixed(2), business.Name, days)
		input.Type = entity.NotificationTypeError
	} else {
		err = srv.mailer.SendRentReminder(ctx, owner.Email, service.RentReminderMail{
			Username:     owner.Username,
			BusinessName: business.Name,
			Amount:       amount,
			DueDate:      due,
			DaysUntilDue: days,
		})
		if err != nil {
			return errors.Wrap(err, "failed to send rent reminder mail")
		}

		input.Title = "Rent due soon"
		input.Message = fmt.Sprintf("Rent of %s for %s is due in %d day(s) on %s.", amount.StringFixed(2), business.Name, days, due.Format(time.DateOnly))
		input.Type = entity.NotificationTypeWarning
	}

	if _, err := srv.notifier.Notify(ctx, input); err != nil {
		return errors.Wrap(err, "failed to create rent notification")
	}

	return nil
}

// ownerOf returns the preloaded owner of a business or loads it.
func (srv *reminderService) ownerOf(ctx context.Context, business *entity.Business) (*entity.UserSummary, error) {
	if business.Owner != nil && business.Owner.Email != "" {
		return business.Owner, nil
	}

	user, err := srv.userRepo.FindUserByID(ctx, business.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business owner")
	}

	return &entity.UserSummary{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}
