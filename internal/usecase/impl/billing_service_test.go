package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"licensing/config"
	"licensing/internal/domain/billing"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/domain/service"
	"licensing/internal/infra/metrics"
	mockRepo "licensing/internal/mocks/repository"
	mockSvc "licensing/internal/mocks/service"
	mockUsecase "licensing/internal/mocks/usecase"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var billingNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type billingServiceFixtures struct {
	service      *billingService
	businessRepo *mockRepo.MockBusinessRepository
	contractRepo *mockRepo.MockContractRepository
	rentRepo     *mockRepo.MockRentRepository
	gateway      *mockSvc.MockPaymentGateway
	notifier     *mockUsecase.MockNotificationUsecase
	metrics      *metrics.Metrics
}

func createTestBillingService(t *testing.T) billingServiceFixtures {
	t.Helper()

	fx := billingServiceFixtures{
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		contractRepo: mockRepo.NewMockContractRepository(t),
		rentRepo:     mockRepo.NewMockRentRepository(t),
		gateway:      mockSvc.NewMockPaymentGateway(t),
		notifier:     mockUsecase.NewMockNotificationUsecase(t),
		metrics:      metrics.New(metrics.NewRegistry()),
	}

	srv := NewBillingService(BillingServiceParams{
		BusinessRepo: fx.businessRepo,
		ContractRepo: fx.contractRepo,
		RentRepo:     fx.rentRepo,
		Gateway:      fx.gateway,
		Notifier:     fx.notifier,
		Metrics:      fx.metrics,
		Config: &config.Config{
			Billing: &config.BillingConfig{RentDueDay: 5, FrontendURL: "https://app.example.com"},
			Payment: &config.PaymentConfig{PollInterval: time.Millisecond, PollTimeout: 50 * time.Millisecond},
		},
		Logger: newDiscardLogger(),
	}).(*billingService)
	srv.now = func() time.Time { return billingNow }
	fx.service = srv

	return fx
}

func approvedBusiness(owner uuid.UUID) *entity.Business {
	return &entity.Business{
		ID:          uuid.New(),
		OwnerID:     owner,
		Name:        "Lakeside Grocers",
		Status:      entity.BusinessStatusApproved,
		ContractFee: decimal.NewFromInt(150000),
		RentFee:     decimal.NewFromInt(25000),
	}
}

func TestBillingService_InitiateContractPayment_Card(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	contractID := uuid.New()

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().
		FindOrCreateContract(ctx, mock.AnythingOfType("*entity.Contract")).
		RunAndReturn(func(_ context.Context, c *entity.Contract) (*entity.Contract, error) {
			assert.True(t, business.ContractFee.Equal(c.Amount))
			c.ID = contractID

			return c, nil
		})
	fx.gateway.EXPECT().
		CreateOrder(ctx, mock.MatchedBy(func(req service.OrderRequest) bool {
			return req.RedirectURL == "https://app.example.com/payment/success?business_id="+business.ID.String() &&
				req.CancelURL == "https://app.example.com/payment/failure"
		})).
		Return(&service.Order{Reference: "ORD-1", PaymentPageURL: "https://pay.example.com/ORD-1"}, nil)
	fx.contractRepo.EXPECT().
		SetContractReference(ctx, contractID, repository.PaymentReference{Method: entity.PaymentMethodCard, OrderReference: "ORD-1"}).
		Return(nil)

	out, err := fx.service.InitiateContractPayment(ctx, owner, &usecase.InitiatePaymentInput{
		BusinessID: business.ID,
		Method:     entity.PaymentMethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentKindContract, out.Kind)
	assert.Equal(t, "contract", out.Period)
	assert.Equal(t, "ORD-1", out.Reference)
	assert.Equal(t, "https://pay.example.com/ORD-1", out.PaymentPageURL)
}

func TestBillingService_InitiateContractPayment_AlreadyPaid(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().
		FindOrCreateContract(ctx, mock.AnythingOfType("*entity.Contract")).
		Return(&entity.Contract{ID: uuid.New(), Status: entity.ContractStatusPaid}, nil)

	_, err := fx.service.InitiateContractPayment(ctx, owner, &usecase.InitiatePaymentInput{
		BusinessID: business.ID,
		Method:     entity.PaymentMethodCard,
	})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyPaid)
	assert.Contains(t, err.Error(), "period=contract")
}

// Both initiations reuse the single pending contract row; each still reaches the gateway.
func TestBillingService_InitiateContractPayment_RepeatedInitiationReusesPendingContract(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	pending := &entity.Contract{ID: uuid.New(), BusinessID: business.ID, Status: entity.ContractStatusPending, Amount: business.ContractFee}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil).Times(2)
	fx.contractRepo.EXPECT().
		FindOrCreateContract(ctx, mock.AnythingOfType("*entity.Contract")).
		Return(pending, nil).Times(2)
	fx.gateway.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("service.OrderRequest")).
		Return(&service.Order{Reference: "ORD-A"}, nil).Once()
	fx.gateway.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("service.OrderRequest")).
		Return(&service.Order{Reference: "ORD-B"}, nil).Once()
	fx.contractRepo.EXPECT().
		SetContractReference(ctx, pending.ID, mock.AnythingOfType("repository.PaymentReference")).
		Return(nil).Times(2)

	input := &usecase.InitiatePaymentInput{BusinessID: business.ID, Method: entity.PaymentMethodCard}
	first, err := fx.service.InitiateContractPayment(ctx, owner, input)
	require.NoError(t, err)
	second, err := fx.service.InitiateContractPayment(ctx, owner, input)
	require.NoError(t, err)

	assert.Equal(t, "ORD-A", first.Reference)
	assert.Equal(t, "ORD-B", second.Reference)
}

func TestBillingService_InitiateContractPayment_Rejections(t *testing.T) {
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}

	t.Run("invalid method", func(t *testing.T) {
		fx := createTestBillingService(t)
		_, err := fx.service.InitiateContractPayment(ctx, owner, &usecase.InitiatePaymentInput{BusinessID: uuid.New(), Method: "cash"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
	})

	t.Run("mobile without phone", func(t *testing.T) {
		fx := createTestBillingService(t)
		_, err := fx.service.InitiateContractPayment(ctx, owner, &usecase.InitiatePaymentInput{BusinessID: uuid.New(), Method: entity.PaymentMethodMobile})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("not owner", func(t *testing.T) {
		fx := createTestBillingService(t)
		business := approvedBusiness(uuid.New())
		fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

		_, err := fx.service.InitiateContractPayment(ctx, owner, &usecase.InitiatePaymentInput{BusinessID: business.ID, Method: entity.PaymentMethodCard})
		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("not approved", func(t *testing.T) {
		fx := createTestBillingService(t)
		business := approvedBusiness(owner.UserID)
		business.Status = entity.BusinessStatusPending
		fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

		_, err := fx.service.InitiateContractPayment(ctx, owner, &usecase.InitiatePaymentInput{BusinessID: business.ID, Method: entity.PaymentMethodCard})
		require.ErrorIs(t, err, domainerrors.ErrBusinessNotApproved)
	})

	t.Run("unknown business", func(t *testing.T) {
		fx := createTestBillingService(t)
		id := uuid.New()
		fx.businessRepo.EXPECT().FindBusinessByID(ctx, id).Return(nil, repository.ErrBusinessNotFound)

		_, err := fx.service.InitiateContractPayment(ctx, owner, &usecase.InitiatePaymentInput{BusinessID: id, Method: entity.PaymentMethodCard})
		require.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
	})
}

func TestBillingService_InitiateRentPayment_Mobile(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	rentID := uuid.New()

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindPaidContract(ctx, business.ID).Return(&entity.Contract{Status: entity.ContractStatusPaid}, nil)
	fx.rentRepo.EXPECT().
		FindOrCreateRent(ctx, mock.AnythingOfType("*entity.Rent")).
		RunAndReturn(func(_ context.Context, r *entity.Rent) (*entity.Rent, error) {
			assert.Equal(t, billing.RentMonth(billingNow), r.Month)
			assert.True(t, business.RentFee.Equal(r.Amount))
			r.ID = rentID

			return r, nil
		})
	fx.gateway.EXPECT().
		CreateMobilePayment(ctx, business.RentFee, "0991234567").
		Return(&service.MobilePayment{TransactionID: "TX-9", Message: "Request sent"}, nil)
	fx.rentRepo.EXPECT().
		SetRentReference(ctx, rentID, repository.PaymentReference{Method: entity.PaymentMethodMobile, TransactionID: "TX-9"}).
		Return(nil)

	out, err := fx.service.InitiateRentPayment(ctx, owner, &usecase.InitiatePaymentInput{
		BusinessID:  business.ID,
		Method:      entity.PaymentMethodMobile,
		PhoneNumber: "0991234567",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentKindRent, out.Kind)
	assert.Equal(t, "2026-03", out.Period)
	assert.Equal(t, "TX-9", out.Reference)
	assert.Equal(t, "Request sent", out.Message)
}

// A second attempt in the same month lands on the stored rent row rather than a new one.
func TestBillingService_InitiateRentPayment_RepeatedInitiationReusesMonthRent(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	var stored *entity.Rent

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil).Times(2)
	fx.contractRepo.EXPECT().FindPaidContract(ctx, business.ID).Return(&entity.Contract{Status: entity.ContractStatusPaid}, nil).Times(2)
	fx.rentRepo.EXPECT().
		FindOrCreateRent(ctx, mock.AnythingOfType("*entity.Rent")).
		RunAndReturn(func(_ context.Context, r *entity.Rent) (*entity.Rent, error) {
			if stored == nil {
				stored = r
			}

			return stored, nil
		}).Times(2)
	fx.gateway.EXPECT().
		CreateMobilePayment(ctx, mock.Anything, "0991234567").
		Return(&service.MobilePayment{TransactionID: "TX-1"}, nil).Once()
	fx.gateway.EXPECT().
		CreateMobilePayment(ctx, mock.Anything, "0991234567").
		Return(&service.MobilePayment{TransactionID: "TX-2"}, nil).Once()

	var referenced []uuid.UUID
	fx.rentRepo.EXPECT().
		SetRentReference(ctx, mock.Anything, mock.AnythingOfType("repository.PaymentReference")).
		RunAndReturn(func(_ context.Context, id uuid.UUID, _ repository.PaymentReference) error {
			referenced = append(referenced, id)

			return nil
		}).Times(2)

	input := &usecase.InitiatePaymentInput{BusinessID: business.ID, Method: entity.PaymentMethodMobile, PhoneNumber: "0991234567"}
	first, err := fx.service.InitiateRentPayment(ctx, owner, input)
	require.NoError(t, err)
	second, err := fx.service.InitiateRentPayment(ctx, owner, input)
	require.NoError(t, err)

	require.Len(t, referenced, 2)
	assert.Equal(t, stored.ID, referenced[0])
	assert.Equal(t, referenced[0], referenced[1])
	assert.Equal(t, first.Period, second.Period)
	assert.Equal(t, "TX-2", second.Reference)
}

func TestBillingService_InitiateRentPayment_RequiresPaidContract(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindPaidContract(ctx, business.ID).Return(nil, repository.ErrContractNotFound)

	_, err := fx.service.InitiateRentPayment(ctx, owner, &usecase.InitiatePaymentInput{BusinessID: business.ID, Method: entity.PaymentMethodCard})
	require.ErrorIs(t, err, domainerrors.ErrContractRequired)
}

func TestBillingService_InitiateRentPayment_AlreadyPaid(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindPaidContract(ctx, business.ID).Return(&entity.Contract{Status: entity.ContractStatusPaid}, nil)
	fx.rentRepo.EXPECT().
		FindOrCreateRent(ctx, mock.AnythingOfType("*entity.Rent")).
		Return(&entity.Rent{ID: uuid.New(), Month: billing.RentMonth(billingNow), Status: entity.RentStatusPaid}, nil)

	_, err := fx.service.InitiateRentPayment(ctx, owner, &usecase.InitiatePaymentInput{BusinessID: business.ID, Method: entity.PaymentMethodCard})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyPaid)
	assert.Contains(t, err.Error(), "period=2026-03")
}

func TestBillingService_CheckPaymentStatus_ContractPaidOnce(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	contract := &entity.Contract{ID: uuid.New(), BusinessID: business.ID, Status: entity.ContractStatusPending, Amount: business.ContractFee, OrderReference: "ORD-1"}
	raw := json.RawMessage(`{"status":"PURCHASED"}`)
	expiry := billing.ContractExpiry(billingNow)

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindContractByReference(ctx, business.ID, "ORD-1").Return(contract, nil)
	fx.gateway.EXPECT().CheckOrder(ctx, "ORD-1").Return(&service.PaymentResult{Outcome: entity.PaymentOutcomePaid, Raw: raw}, nil)
	fx.contractRepo.EXPECT().MarkContractPaid(ctx, contract.ID, billingNow, expiry).Return(true, nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.RecipientID == owner.UserID && in.Type == entity.NotificationTypeSuccess
		})).
		Return(&entity.Notification{}, nil)

	check, err := fx.service.CheckPaymentStatus(ctx, owner, business.ID, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentOutcomePaid, check.Outcome)
	assert.Equal(t, entity.PaymentKindContract, check.Kind)
	require.NotNil(t, check.Expiry)
	assert.Equal(t, expiry, *check.Expiry)
	assert.JSONEq(t, string(raw), string(check.Provider))
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.PaymentsSettled.WithLabelValues("contract")), 0)
}

func TestBillingService_CheckPaymentStatus_ConcurrentSettlementKeepsStoredDates(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	contract := &entity.Contract{ID: uuid.New(), BusinessID: business.ID, Status: entity.ContractStatusPending, OrderReference: "ORD-1"}
	earlier := billingNow.Add(-time.Minute)
	earlierExpiry := billing.ContractExpiry(earlier)
	stored := &entity.Contract{ID: contract.ID, Status: entity.ContractStatusPaid, PaymentDate: &earlier, Expiry: &earlierExpiry}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindContractByReference(ctx, business.ID, "ORD-1").Return(contract, nil).Once()
	fx.gateway.EXPECT().CheckOrder(ctx, "ORD-1").Return(&service.PaymentResult{Outcome: entity.PaymentOutcomePaid}, nil)
	fx.contractRepo.EXPECT().MarkContractPaid(ctx, contract.ID, mock.Anything, mock.Anything).Return(false, nil)
	fx.contractRepo.EXPECT().FindContractByReference(ctx, business.ID, "ORD-1").Return(stored, nil).Once()

	check, err := fx.service.CheckPaymentStatus(ctx, owner, business.ID, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentOutcomePaid, check.Outcome)
	assert.Equal(t, earlier, *check.PaymentDate)
	assert.Equal(t, earlierExpiry, *check.Expiry)
}

func TestBillingService_CheckPaymentStatus_PaidRecordSkipsGateway(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	paidAt := billingNow.Add(-24 * time.Hour)
	rent := &entity.Rent{ID: uuid.New(), Month: billing.RentMonth(billingNow), Status: entity.RentStatusPaid, PaymentDate: &paidAt, TransactionID: "TX-1"}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindContractByReference(ctx, business.ID, "TX-1").Return(nil, repository.ErrContractNotFound)
	fx.rentRepo.EXPECT().FindRentByReference(ctx, business.ID, "TX-1").Return(rent, nil)

	check, err := fx.service.CheckPaymentStatus(ctx, owner, business.ID, "TX-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentOutcomePaid, check.Outcome)
	assert.Equal(t, "2026-03", check.Period)
	assert.Equal(t, paidAt, *check.PaymentDate)
}

func TestBillingService_CheckPaymentStatus_FailedMobileClearsTransaction(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	rent := &entity.Rent{ID: uuid.New(), Month: billing.RentMonth(billingNow), Status: entity.RentStatusPending, TransactionID: "TX-1"}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindContractByReference(ctx, business.ID, "TX-1").Return(nil, repository.ErrContractNotFound)
	fx.rentRepo.EXPECT().FindRentByReference(ctx, business.ID, "TX-1").Return(rent, nil)
	fx.gateway.EXPECT().CheckMobilePayment(ctx, "TX-1").Return(&service.PaymentResult{Outcome: entity.PaymentOutcomeFailed, Message: "declined"}, nil)
	fx.rentRepo.EXPECT().ClearRentTransaction(ctx, rent.ID, "TX-1").Return(nil)

	check, err := fx.service.CheckPaymentStatus(ctx, owner, business.ID, "TX-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentOutcomeFailed, check.Outcome)
	assert.Equal(t, "declined", check.Message)
}

func TestBillingService_CheckPaymentStatus_UnknownReference(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	business := approvedBusiness(uuid.New())

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindContractByReference(ctx, business.ID, "nope").Return(nil, repository.ErrContractNotFound)
	fx.rentRepo.EXPECT().FindRentByReference(ctx, business.ID, "nope").Return(nil, repository.ErrRentNotFound)

	_, err := fx.service.CheckPaymentStatus(ctx, admin, business.ID, "nope")
	require.ErrorIs(t, err, domainerrors.ErrPaymentRecordNotFound)
}

func TestBillingService_AwaitPayment_PollsUntilTerminal(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	contract := &entity.Contract{ID: uuid.New(), Status: entity.ContractStatusPending, OrderReference: "ORD-1"}

	fx.businessRepo.EXPECT().FindBusinessByID(mock.Anything, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindContractByReference(mock.Anything, business.ID, "ORD-1").Return(contract, nil)
	fx.gateway.EXPECT().CheckOrder(mock.Anything, "ORD-1").Return(&service.PaymentResult{Outcome: entity.PaymentOutcomePending}, nil).Once()
	fx.gateway.EXPECT().CheckOrder(mock.Anything, "ORD-1").Return(nil, domainerrors.ErrPaymentGateway).Once()
	fx.gateway.EXPECT().CheckOrder(mock.Anything, "ORD-1").Return(&service.PaymentResult{Outcome: entity.PaymentOutcomeFailed}, nil).Once()

	check, err := fx.service.AwaitPayment(ctx, owner, business.ID, "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentOutcomeFailed, check.Outcome)
}

func TestBillingService_AwaitPayment_TimesOut(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	contract := &entity.Contract{ID: uuid.New(), Status: entity.ContractStatusPending, OrderReference: "ORD-1"}

	fx.businessRepo.EXPECT().FindBusinessByID(mock.Anything, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindContractByReference(mock.Anything, business.ID, "ORD-1").Return(contract, nil)
	fx.gateway.EXPECT().CheckOrder(mock.Anything, "ORD-1").Return(&service.PaymentResult{Outcome: entity.PaymentOutcomePending}, nil)

	_, err := fx.service.AwaitPayment(ctx, owner, business.ID, "ORD-1")
	require.ErrorIs(t, err, domainerrors.ErrPaymentTimeout)
}

func TestBillingService_RentSchedule(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	from, to := billing.ScheduleWindow(billingNow)

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.rentRepo.EXPECT().ListRentsBetween(ctx, business.ID, from, to).Return([]*entity.Rent{
		{Month: billing.RentMonth(billingNow), Status: entity.RentStatusPaid},
	}, nil)

	entries, err := fx.service.RentSchedule(ctx, owner, business.ID)
	require.NoError(t, err)
	require.Len(t, entries, billing.ScheduleLength)
	assert.Equal(t, entity.RentStatusPaid, entries[0].Status)
	assert.Equal(t, entity.RentStatusPending, entries[1].Status)
	assert.Equal(t, time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC), entries[2].DueDate)
}

func TestBillingService_PaymentStatus_NoRecords(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindLatestContract(ctx, business.ID).Return(nil, repository.ErrContractNotFound)
	fx.rentRepo.EXPECT().FindRent(ctx, business.ID, billing.RentMonth(billingNow)).Return(nil, repository.ErrRentNotFound)

	out, err := fx.service.PaymentStatus(ctx, owner, business.ID)
	require.NoError(t, err)
	assert.Nil(t, out.Contract)
	assert.Nil(t, out.Rent)
	assert.Equal(t, billing.RentMonth(billingNow), out.RentMonth)
}

func TestBillingService_ActiveContract_NotPaid(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.contractRepo.EXPECT().FindPaidContract(ctx, business.ID).Return(nil, repository.ErrContractNotFound)

	_, err := fx.service.ActiveContract(ctx, owner, business.ID)
	require.ErrorIs(t, err, domainerrors.ErrContractNotFound)
}

func TestBillingService_RentHistory(t *testing.T) {
	fx := createTestBillingService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := approvedBusiness(owner.UserID)
	rents := []*entity.Rent{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.rentRepo.EXPECT().ListRents(ctx, business.ID, rentHistoryLimit).Return(rents, nil)

	out, err := fx.service.RentHistory(ctx, owner, business.ID)
	require.NoError(t, err)
	assert.Equal(t, rents, out)
}
