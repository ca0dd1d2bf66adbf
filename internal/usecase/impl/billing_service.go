package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"licensing/config"
	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/billing"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/domain/service"
	"licensing/internal/errors"
	"licensing/internal/infra/metrics"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const rentHistoryLimit = 12

type billingService struct {
	businessRepo repository.BusinessRepository
	contractRepo repository.ContractRepository
	rentRepo     repository.RentRepository
	gateway      service.PaymentGateway
	notifier     usecase.NotificationUsecase
	metrics      *metrics.Metrics
	frontendURL  string
	dueDay       int
	pollInterval time.Duration
	pollTimeout  time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// BillingServiceParams holds dependencies for BillingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	ContractRepo repository.ContractRepository
	RentRepo     repository.RentRepository
	Gateway      service.PaymentGateway
	Notifier     usecase.NotificationUsecase
	Metrics      *metrics.Metrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBillingService creates the billing usecase.
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	srv := &billingService{
		businessRepo: params.BusinessRepo,
		contractRepo: params.ContractRepo,
		rentRepo:     params.RentRepo,
		gateway:      params.Gateway,
		notifier:     params.Notifier,
		metrics:      params.Metrics,
		dueDay:       billing.DefaultDueDay,
		pollInterval: 5 * time.Second,
		pollTimeout:  2 * time.Minute,
		logger:       params.Logger,
		now:          time.Now,
	}

	if params.Config != nil {
		if params.Config.Billing != nil {
			srv.frontendURL = params.Config.Billing.FrontendURL
			srv.dueDay = params.Config.Billing.RentDueDay
		}
		if params.Config.Payment != nil {
			srv.pollInterval = params.Config.Payment.PollInterval
			srv.pollTimeout = params.Config.Payment.PollTimeout
		}
	}

	return srv
}

func (srv *billingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitiateContractPayment starts a payment for the one-time contract fee.
func (srv *billingService) InitiateContractPayment(ctx context.Context, principal entity.Principal, input *usecase.InitiatePaymentInput) (*usecase.PaymentInitiation, error) {
	if err := validatePaymentInput(input); err != nil {
		return nil, err
	}

	business, err := srv.payableBusiness(ctx, principal, input.BusinessID)
	if err != nil {
		return nil, err
	}

	contract, err := srv.contractRepo.FindOrCreateContract(ctx, &entity.Contract{
		ID:         uuid.New(),
		BusinessID: business.ID,
		OwnerID:    business.OwnerID,
		Status:     entity.ContractStatusPending,
		Amount:     business.ContractFee,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find or create contract")
	}

	if contract.IsPaid() {
		return nil, domainerrors.ErrAlreadyPaid.WithPeriod(string(entity.PaymentKindContract))
	}

	initiation, ref, err := srv.startPayment(ctx, business.ID, contract.Amount, input)
	if err != nil {
		return nil, err
	}

	if err := srv.contractRepo.SetContractReference(ctx, contract.ID, ref); err != nil {
		return nil, errors.Wrap(err, "failed to store contract payment reference")
	}

	initiation.Kind = entity.PaymentKindContract
	initiation.Period = string(entity.PaymentKindContract)

	srv.log(ctx).Info("Contract payment initiated",
		slog.String("businessID", business.ID.String()),
		slog.String("method", string(input.Method)),
		slog.String("reference", initiation.Reference))

	return initiation, nil
}

// InitiateRentPayment starts a payment for the current month's rent.
func (srv *billingService) InitiateRentPayment(ctx context.Context, principal entity.Principal, input *usecase.InitiatePaymentInput) (*usecase.PaymentInitiation, error) {
	if err := validatePaymentInput(input); err != nil {
		return nil, err
	}

	business, err := srv.payableBusiness(ctx, principal, input.BusinessID)
	if err != nil {
		return nil, err
	}

	if _, err := srv.contractRepo.FindPaidContract(ctx, business.ID); err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return nil, domainerrors.ErrContractRequired
		}

		return nil, errors.Wrap(err, "failed to find paid contract")
	}

	rent, err := srv.rentRepo.FindOrCreateRent(ctx, &entity.Rent{
		ID:         uuid.New(),
		BusinessID: business.ID,
		OwnerID:    business.OwnerID,
		Amount:     business.RentFee,
		Month:      billing.RentMonth(srv.now()),
		Status:     entity.RentStatusPending,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find or create rent")
	}

	if rent.IsPaid() {
		return nil, domainerrors.ErrAlreadyPaid.WithPeriod(rent.Period())
	}

	initiation, ref, err := srv.startPayment(ctx, business.ID, rent.Amount, input)
	if err != nil {
		return nil, err
	}

	if err := srv.rentRepo.SetRentReference(ctx, rent.ID, ref); err != nil {
		return nil, errors.Wrap(err, "failed to store rent payment reference")
	}

	initiation.Kind = entity.PaymentKindRent
	initiation.Period = rent.Period()

	srv.log(ctx).Info("Rent payment initiated",
		slog.String("businessID", business.ID.String()),
		slog.String("period", rent.Period()),
		slog.String("method", string(input.Method)),
		slog.String("reference", initiation.Reference))

	return initiation, nil
}

func validatePaymentInput(input *usecase.InitiatePaymentInput) error {
	if !input.Method.IsValid() {
		return domainerrors.ErrInvalidPaymentMethod
	}
	if input.Method == entity.PaymentMethodMobile && input.PhoneNumber == "" {
		return domainerrors.ErrValidationFailed.WithField("phoneNumber")
	}

	return nil
}

// payableBusiness loads a business the principal owns and that may accrue fees.
func (srv *billingService) payableBusiness(ctx context.Context, principal entity.Principal, businessID uuid.UUID) (*entity.Business, error) {
	business, err := srv.ownedBusiness(ctx, principal, businessID, false)
	if err != nil {
		return nil, err
	}

	if !business.IsApproved() {
		return nil, domainerrors.ErrBusinessNotApproved
	}

	return business, nil
}

// ownedBusiness loads a business visible to principal. Admins see every business when allowAdmin is set.
func (srv *billingService) ownedBusiness(ctx context.Context, principal entity.Principal, businessID uuid.UUID, allowAdmin bool) (*entity.Business, error) {
	business, err := srv.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	if business.OwnerID == principal.UserID {
		return business, nil
	}
	if allowAdmin && principal.HasRole(entity.RoleAdmin) {
		return business, nil
	}

	return nil, domainerrors.ErrForbidden
}

func (srv *billingService) startPayment(ctx context.Context, businessID uuid.UUID, amount decimal.Decimal, input *usecase.InitiatePaymentInput) (*usecase.PaymentInitiation, repository.PaymentReference, error) {
	ref := repository.PaymentReference{Method: input.Method}

	switch input.Method {
	case entity.PaymentMethodMobile:
		payment, err := srv.gateway.CreateMobilePayment(ctx, amount, input.PhoneNumber)
		if err != nil {
			return nil, ref, errors.Wrap(err, "failed to create mobile payment")
		}
		ref.TransactionID = payment.TransactionID

		return &usecase.PaymentInitiation{
			Method:    input.Method,
			Amount:    amount,
			Reference: payment.TransactionID,
			Message:   payment.Message,
		}, ref, nil
	default:
		order, err := srv.gateway.CreateOrder(ctx, service.OrderRequest{
			Amount:      amount,
			RedirectURL: srv.frontendURL + "/payment/success?business_id=" + businessID.String(),
			CancelURL:   srv.frontendURL + "/payment/failure",
			CancelText:  "Cancel payment",
		})
		if err != nil {
			return nil, ref, errors.Wrap(err, "failed to create payment order")
		}
		ref.OrderReference = order.Reference

		return &usecase.PaymentInitiation{
			Method:         input.Method,
			Amount:         amount,
			Reference:      order.Reference,
			PaymentPageURL: order.PaymentPageURL,
		}, ref, nil
	}
}

// CheckPaymentStatus reconciles one provider status check with the stored record.
func (srv *billingService) CheckPaymentStatus(ctx context.Context, principal entity.Principal, businessID uuid.UUID, reference string) (*usecase.PaymentCheck, error) {
	business, err := srv.ownedBusiness(ctx, principal, businessID, true)
	if err != nil {
		return nil, err
	}

	contract, err := srv.contractRepo.FindContractByReference(ctx, business.ID, reference)
	switch {
	case err == nil:
		return srv.checkContract(ctx, business, contract, reference)
	case !errors.Is(err, repository.ErrContractNotFound):
		return nil, errors.Wrap(err, "failed to find contract by reference")
	}

	rent, err := srv.rentRepo.FindRentByReference(ctx, business.ID, reference)
	switch {
	case err == nil:
		return srv.checkRent(ctx, business, rent, reference)
	case errors.Is(err, repository.ErrRentNotFound):
		return nil, domainerrors.ErrPaymentRecordNotFound
	default:
		return nil, errors.Wrap(err, "failed to find rent by reference")
	}
}

func (srv *billingService) checkContract(ctx context.Context, business *entity.Business, contract *entity.Contract, reference string) (*usecase.PaymentCheck, error) {
	check := &usecase.PaymentCheck{
		Kind:   entity.PaymentKindContract,
		Period: string(entity.PaymentKindContract),
		Amount: contract.Amount,
	}

	if contract.IsPaid() {
		check.Outcome = entity.PaymentOutcomePaid
		check.PaymentDate = contract.PaymentDate
		check.Expiry = contract.Expiry

		return check, nil
	}

	mobile := contract.TransactionID != "" && contract.TransactionID == reference
	result, err := srv.checkGateway(ctx, mobile, reference)
	if err != nil {
		return nil, err
	}
	check.Outcome = result.Outcome
	check.Message = result.Message
	check.Provider = result.Raw

	switch {
	case result.Outcome == entity.PaymentOutcomePaid:
		paidAt := srv.now().UTC()
		expiry := billing.ContractExpiry(paidAt)

		updated, err := srv.contractRepo.MarkContractPaid(ctx, contract.ID, paidAt, expiry)
		if err != nil {
			return nil, errors.Wrap(err, "failed to mark contract paid")
		}

		if !updated {
			stored, err := srv.contractRepo.FindContractByReference(ctx, business.ID, reference)
			if err != nil {
				return nil, errors.Wrap(err, "failed to reload paid contract")
			}
			check.PaymentDate = stored.PaymentDate
			check.Expiry = stored.Expiry

			return check, nil
		}

		check.PaymentDate = &paidAt
		check.Expiry = &expiry
		srv.metrics.PaymentSettled(string(entity.PaymentKindContract))
		srv.notifyPaid(ctx, business, "Contract payment received",
			"Your contract fee for "+business.Name+" has been paid. It is valid until "+expiry.Format(time.DateOnly)+".")
	case result.Outcome == entity.PaymentOutcomeFailed && mobile:
		if err := srv.contractRepo.ClearContractTransaction(ctx, contract.ID, reference); err != nil {
			return nil, errors.Wrap(err, "failed to clear failed contract transaction")
		}
	}

	return check, nil
}

func (srv *billingService) checkRent(ctx context.Context, business *entity.Business, rent *entity.Rent, reference string) (*usecase.PaymentCheck, error) {
	check := &usecase.PaymentCheck{
		Kind:   entity.PaymentKindRent,
		Period: rent.Period(),
		Amount: rent.Amount,
	}

	if rent.IsPaid() {
		check.Outcome = entity.PaymentOutcomePaid
		check.PaymentDate = rent.PaymentDate

		return check, nil
	}

	mobile := rent.TransactionID != "" && rent.TransactionID == reference
	result, err := srv.checkGateway(ctx, mobile, reference)
	if err != nil {
		return nil, err
	}
	check.Outcome = result.Outcome
	check.Message = result.Message
	check.Provider = result.Raw

	switch {
	case result.Outcome == entity.PaymentOutcomePaid:
		paidAt := srv.now().UTC()

		updated, err := srv.rentRepo.MarkRentPaid(ctx, rent.ID, paidAt)
		if err != nil {
			return nil, errors.Wrap(err, "failed to mark rent paid")
		}

		if !updated {
			stored, err := srv.rentRepo.FindRentByReference(ctx, business.ID, reference)
			if err != nil {
				return nil, errors.Wrap(err, "failed to reload paid rent")
			}
			check.PaymentDate = stored.PaymentDate

			return check, nil
		}

		check.PaymentDate = &paidAt
		srv.metrics.PaymentSettled(string(entity.PaymentKindRent))
		srv.notifyPaid(ctx, business, "Rent payment received",
			"Rent for "+rent.Period()+" for "+business.Name+" has been paid.")
	case result.Outcome == entity.PaymentOutcomeFailed && mobile:
		if err := srv.rentRepo.ClearRentTransaction(ctx, rent.ID, reference); err != nil {
			return nil, errors.Wrap(err, "failed to clear failed rent transaction")
		}
	}

	return check, nil
}

func (srv *billingService) checkGateway(ctx context.Context, mobile bool, reference string) (*service.PaymentResult, error) {
	if mobile {
		result, err := srv.gateway.CheckMobilePayment(ctx, reference)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check mobile payment")
		}

		return result, nil
	}

	result, err := srv.gateway.CheckOrder(ctx, reference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check payment order")
	}

	return result, nil
}

func (srv *billingService) notifyPaid(ctx context.Context, business *entity.Business, title, message string) {
	_, err := srv.notifier.Notify(ctx, &usecase.NotifyInput{
		RecipientID: business.OwnerID,
		Title:       title,
		Message:     message,
		Type:        entity.NotificationTypeSuccess,
		Link:        "/dashboard",
		Metadata:    map[string]any{"businessId": business.ID.String()},
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to notify owner about payment",
			slog.String("businessID", business.ID.String()),
			slog.Any("error", err))
	}
}

// AwaitPayment polls CheckPaymentStatus until the outcome is terminal or the ceiling passes.
func (srv *billingService) AwaitPayment(ctx context.Context, principal entity.Principal, businessID uuid.UUID, reference string) (*usecase.PaymentCheck, error) {
	ctx, cancel := context.WithTimeout(ctx, srv.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(srv.pollInterval)
	defer ticker.Stop()

	for {
		check, err := srv.CheckPaymentStatus(ctx, principal, businessID, reference)
		switch {
		case err == nil && check.Outcome.IsTerminal():
			return check, nil
		case err != nil && ctx.Err() != nil:
			return nil, domainerrors.ErrPaymentTimeout.WithDetails("reference=" + reference)
		case err != nil && !domainerrors.IsRetryable(err):
			return nil, err
		case err != nil:
			srv.log(ctx).Warn("Payment status check failed, retrying",
				slog.String("reference", reference),
				slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return nil, domainerrors.ErrPaymentTimeout.WithDetails("reference=" + reference)
		case <-ticker.C:
		}
	}
}

// RentHistory returns the latest rent records of a business.
func (srv *billingService) RentHistory(ctx context.Context, principal entity.Principal, businessID uuid.UUID) ([]*entity.Rent, error) {
	business, err := srv.ownedBusiness(ctx, principal, businessID, true)
	if err != nil {
		return nil, err
	}

	rents, err := srv.rentRepo.ListRents(ctx, business.ID, rentHistoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rents")
	}

	return rents, nil
}

// RentSchedule materializes the upcoming rent obligations.
func (srv *billingService) RentSchedule(ctx context.Context, principal entity.Principal, businessID uuid.UUID) ([]billing.ScheduleEntry, error) {
	business, err := srv.ownedBusiness(ctx, principal, businessID, true)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	from, to := billing.ScheduleWindow(now)

	rents, err := srv.rentRepo.ListRentsBetween(ctx, business.ID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scheduled rents")
	}

	return slices.Collect(billing.Schedule(now, business.RentFee, srv.dueDay, rents)), nil
}

// PaymentStatus reports the contract and current month rent of a business.
func (srv *billingService) PaymentStatus(ctx context.Context, principal entity.Principal, businessID uuid.UUID) (*usecase.PaymentStatusOutput, error) {
	business, err := srv.ownedBusiness(ctx, principal, businessID, true)
	if err != nil {
		return nil, err
	}

	month := billing.RentMonth(srv.now())
	output := &usecase.PaymentStatusOutput{RentMonth: month}

	contract, err := srv.contractRepo.FindLatestContract(ctx, business.ID)
	switch {
	case err == nil:
		output.Contract = &usecase.FeeStatus{Status: string(contract.Status), PaymentDate: contract.PaymentDate}
	case !errors.Is(err, repository.ErrContractNotFound):
		return nil, errors.Wrap(err, "failed to find latest contract")
	}

	rent, err := srv.rentRepo.FindRent(ctx, business.ID, month)
	switch {
	case err == nil:
		output.Rent = &usecase.FeeStatus{Status: string(rent.Status), PaymentDate: rent.PaymentDate}
	case !errors.Is(err, repository.ErrRentNotFound):
		return nil, errors.Wrap(err, "failed to find current rent")
	}

	return output, nil
}

// ActiveContract returns the paid contract of a business.
func (srv *billingService) ActiveContract(ctx context.Context, principal entity.Principal, businessID uuid.UUID) (*entity.Contract, error) {
	business, err := srv.ownedBusiness(ctx, principal, businessID, true)
	if err != nil {
		return nil, err
	}

	contract, err := srv.contractRepo.FindPaidContract(ctx, business.ID)
	if err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return nil, domainerrors.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to find paid contract")
	}

	return contract, nil
}
