package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"licensing/config"
	"licensing/internal/domain/billing"
	"licensing/internal/domain/entity"
	"licensing/internal/domain/repository"
	"licensing/internal/domain/service"
	"licensing/internal/infra/metrics"
	mockRepo "licensing/internal/mocks/repository"
	mockSvc "licensing/internal/mocks/service"
	mockUsecase "licensing/internal/mocks/usecase"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// licenseLedger holds the rows one business accumulates and backs the repository mocks with them.
type licenseLedger struct {
	business *entity.Business
	location *entity.Location
	contract *entity.Contract
	rent     *entity.Rent
}

func (l *licenseLedger) wireBusinesses(repo *mockRepo.MockBusinessRepository) {
	current := func() *entity.Business {
		b := *l.business

		return &b
	}

	repo.EXPECT().FindBusinessByID(mock.Anything, l.business.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Business, error) { return current(), nil })
	repo.EXPECT().FindBusinessByOwner(mock.Anything, l.business.OwnerID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Business, error) { return current(), nil })
	repo.EXPECT().UpdateStatus(mock.Anything, mock.AnythingOfType("repository.BusinessStatusUpdate")).
		RunAndReturn(func(_ context.Context, u repository.BusinessStatusUpdate) error {
			l.business.Status = u.Status
			if u.RentFee != nil {
				l.business.RentFee = *u.RentFee
			}

			return nil
		})
	repo.EXPECT().AssignLocation(mock.Anything, l.business.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, name string) error {
			l.business.Location = &name

			return nil
		})
}

func (l *licenseLedger) wireLocations(repo *mockRepo.MockLocationRepository) {
	repo.EXPECT().FindLocationByID(mock.Anything, l.location.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Location, error) {
			loc := *l.location

			return &loc, nil
		})
	repo.EXPECT().ReserveLocation(mock.Anything, l.location.ID).
		RunAndReturn(func(context.Context, uuid.UUID) error {
			if !l.location.Available {
				return repository.ErrLocationUnavailable
			}
			l.location.Available = false

			return nil
		})
}

func (l *licenseLedger) wireContracts(repo *mockRepo.MockContractRepository) {
	current := func() *entity.Contract {
		c := *l.contract

		return &c
	}

	repo.EXPECT().FindOrCreateContract(mock.Anything, mock.AnythingOfType("*entity.Contract")).
		RunAndReturn(func(_ context.Context, c *entity.Contract) (*entity.Contract, error) {
			if l.contract == nil {
				created := *c
				l.contract = &created
			}

			return current(), nil
		})
	repo.EXPECT().SetContractReference(mock.Anything, mock.Anything, mock.AnythingOfType("repository.PaymentReference")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, ref repository.PaymentReference) error {
			l.contract.PaymentMethod = ref.Method
			l.contract.OrderReference = ref.OrderReference
			l.contract.TransactionID = ref.TransactionID

			return nil
		})
	repo.EXPECT().FindContractByReference(mock.Anything, l.business.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, reference string) (*entity.Contract, error) {
			if l.contract == nil || (reference != l.contract.TransactionID && reference != l.contract.OrderReference) {
				return nil, repository.ErrContractNotFound
			}

			return current(), nil
		})
	repo.EXPECT().MarkContractPaid(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, paidAt, expiry time.Time) (bool, error) {
			if l.contract.IsPaid() {
				return false, nil
			}
			l.contract.Status = entity.ContractStatusPaid
			l.contract.PaymentDate = &paidAt
			l.contract.Expiry = &expiry

			return true, nil
		})
	repo.EXPECT().FindPaidContract(mock.Anything, l.business.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Contract, error) {
			if l.contract == nil || !l.contract.IsPaid() {
				return nil, repository.ErrContractNotFound
			}

			return current(), nil
		})
	repo.EXPECT().FindLatestContract(mock.Anything, l.business.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Contract, error) { return current(), nil })
}

func (l *licenseLedger) wireRents(repo *mockRepo.MockRentRepository) {
	current := func() *entity.Rent {
		r := *l.rent

		return &r
	}

	repo.EXPECT().FindOrCreateRent(mock.Anything, mock.AnythingOfType("*entity.Rent")).
		RunAndReturn(func(_ context.Context, r *entity.Rent) (*entity.Rent, error) {
			if l.rent == nil {
				created := *r
				l.rent = &created
			}

			return current(), nil
		})
	repo.EXPECT().SetRentReference(mock.Anything, mock.Anything, mock.AnythingOfType("repository.PaymentReference")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, ref repository.PaymentReference) error {
			l.rent.PaymentMethod = ref.Method
			l.rent.OrderReference = ref.OrderReference
			l.rent.TransactionID = ref.TransactionID

			return nil
		})
	repo.EXPECT().FindRentByReference(mock.Anything, l.business.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, reference string) (*entity.Rent, error) {
			if l.rent == nil || (reference != l.rent.TransactionID && reference != l.rent.OrderReference) {
				return nil, repository.ErrRentNotFound
			}

			return current(), nil
		})
	repo.EXPECT().MarkRentPaid(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, paidAt time.Time) (bool, error) {
			if l.rent.IsPaid() {
				return false, nil
			}
			l.rent.Status = entity.RentStatusPaid
			l.rent.PaymentDate = &paidAt

			return true, nil
		})
	repo.EXPECT().FindRent(mock.Anything, l.business.ID, billing.RentMonth(billingNow)).
		RunAndReturn(func(context.Context, uuid.UUID, time.Time) (*entity.Rent, error) {
			if l.rent == nil {
				return nil, repository.ErrRentNotFound
			}

			return current(), nil
		})
}

func TestLicensingLifecycle_ApprovalThroughFirstRent(t *testing.T) {
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	ledger := &licenseLedger{
		business: &entity.Business{
			ID:          uuid.New(),
			OwnerID:     owner.UserID,
			Name:        "Lakeside Grocers",
			Status:      entity.BusinessStatusPending,
			ContractFee: decimal.NewFromInt(150000),
		},
		location: &entity.Location{ID: uuid.New(), Name: "Stall-12", Available: true},
	}

	businessRepo := mockRepo.NewMockBusinessRepository(t)
	contractRepo := mockRepo.NewMockContractRepository(t)
	rentRepo := mockRepo.NewMockRentRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	notifier := mockUsecase.NewMockNotificationUsecase(t)

	ledger.wireBusinesses(businessRepo)
	ledger.wireLocations(locationRepo)
	ledger.wireContracts(contractRepo)
	ledger.wireRents(rentRepo)
	expectTransaction(txManager, factory)
	factory.EXPECT().NewBusinessRepository().Return(businessRepo)
	factory.EXPECT().NewLocationRepository().Return(locationRepo)

	var titles []string
	notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(in *usecase.NotifyInput) bool { return in.RecipientID == owner.UserID })).
		RunAndReturn(func(_ context.Context, in *usecase.NotifyInput) (*entity.Notification, error) {
			titles = append(titles, in.Title)

			return &entity.Notification{}, nil
		}).Times(4)

	businessSrv, err := NewBusinessService(BusinessServiceParams{
		BusinessRepo: businessRepo,
		Notifier:     notifier,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	billingSrv := NewBillingService(BillingServiceParams{
		BusinessRepo: businessRepo,
		ContractRepo: contractRepo,
		RentRepo:     rentRepo,
		Gateway:      gateway,
		Notifier:     notifier,
		Metrics:      metrics.New(metrics.NewRegistry()),
		Config: &config.Config{
			Billing: &config.BillingConfig{RentDueDay: 5, FrontendURL: "https://app.example.com"},
			Payment: &config.PaymentConfig{PollInterval: time.Millisecond, PollTimeout: 50 * time.Millisecond},
		},
		Logger: newDiscardLogger(),
	}).(*billingService)
	billingSrv.now = func() time.Time { return billingNow }

	locationSrv := NewLocationService(LocationServiceParams{
		TxManager:    txManager,
		LocationRepo: locationRepo,
		Notifier:     notifier,
		Logger:       newDiscardLogger(),
	})

	// Approval fixes the monthly rent.
	rentFee := decimal.NewFromInt(5000)
	approved, err := businessSrv.UpdateStatus(ctx, adminPrincipal, ledger.business.ID, &usecase.ApplicationDecisionInput{
		Status:  entity.BusinessStatusApproved,
		RentFee: &rentFee,
	})
	require.NoError(t, err)
	assert.True(t, approved.IsApproved())
	assert.True(t, rentFee.Equal(ledger.business.RentFee))

	// Contract fee over mobile money.
	gateway.EXPECT().
		CreateMobilePayment(mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(150000)) }), "0991234567").
		Return(&service.MobilePayment{TransactionID: "TX-CONTRACT", Message: "Request sent"}, nil).Once()

	contractPay, err := billingSrv.InitiateContractPayment(ctx, owner, &usecase.InitiatePaymentInput{
		BusinessID:  ledger.business.ID,
		Method:      entity.PaymentMethodMobile,
		PhoneNumber: "0991234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "TX-CONTRACT", contractPay.Reference)
	assert.Equal(t, entity.ContractStatusPending, ledger.contract.Status)

	// The provider reports TS for the transaction.
	raw := json.RawMessage(`{"transaction_status":"TS","airtel_money_id":"AM-1"}`)
	gateway.EXPECT().
		CheckMobilePayment(mock.Anything, "TX-CONTRACT").
		Return(&service.PaymentResult{Outcome: entity.PaymentOutcomePaid, Raw: raw}, nil).Once()

	contractCheck, err := billingSrv.CheckPaymentStatus(ctx, owner, ledger.business.ID, "TX-CONTRACT")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentOutcomePaid, contractCheck.Outcome)
	assert.Equal(t, entity.PaymentKindContract, contractCheck.Kind)
	assert.JSONEq(t, string(raw), string(contractCheck.Provider))

	// The contract runs exactly one calendar year from payment.
	active, err := billingSrv.ActiveContract(ctx, owner, ledger.business.ID)
	require.NoError(t, err)
	assert.True(t, active.IsPaid())
	require.NotNil(t, active.PaymentDate)
	require.NotNil(t, active.Expiry)
	assert.Equal(t, billingNow, *active.PaymentDate)
	assert.Equal(t, time.Date(2027, time.March, 10, 12, 0, 0, 0, time.UTC), *active.Expiry)
	assert.Equal(t, *contractCheck.Expiry, *active.Expiry)

	// Location application.
	withStall, err := locationSrv.ApplyForLocation(ctx, owner, ledger.location.ID)
	require.NoError(t, err)
	require.NotNil(t, withStall.Location)
	assert.Equal(t, "Stall-12", *withStall.Location)
	assert.False(t, ledger.location.Available)

	// First month's rent by card, charged at the approved fee.
	gateway.EXPECT().
		CreateOrder(mock.Anything, mock.MatchedBy(func(req service.OrderRequest) bool { return req.Amount.Equal(rentFee) })).
		Return(&service.Order{Reference: "ORD-RENT-1", PaymentPageURL: "https://pay.example.com/ORD-RENT-1"}, nil).Once()

	rentPay, err := billingSrv.InitiateRentPayment(ctx, owner, &usecase.InitiatePaymentInput{
		BusinessID: ledger.business.ID,
		Method:     entity.PaymentMethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03", rentPay.Period)
	assert.True(t, rentFee.Equal(rentPay.Amount))

	gateway.EXPECT().
		CheckOrder(mock.Anything, "ORD-RENT-1").
		Return(&service.PaymentResult{Outcome: entity.PaymentOutcomePaid, Raw: json.RawMessage(`{"status":"PURCHASED"}`)}, nil).Once()

	rentCheck, err := billingSrv.CheckPaymentStatus(ctx, owner, ledger.business.ID, "ORD-RENT-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentOutcomePaid, rentCheck.Outcome)
	assert.Equal(t, entity.PaymentKindRent, rentCheck.Kind)

	status, err := billingSrv.PaymentStatus(ctx, owner, ledger.business.ID)
	require.NoError(t, err)
	require.NotNil(t, status.Contract)
	require.NotNil(t, status.Rent)
	assert.Equal(t, string(entity.ContractStatusPaid), status.Contract.Status)
	assert.Equal(t, string(entity.RentStatusPaid), status.Rent.Status)

	assert.Len(t, titles, 4)
	assert.Equal(t, "Rent payment received", titles[len(titles)-1])
}
