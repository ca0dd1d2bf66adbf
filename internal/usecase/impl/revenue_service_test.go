package impl

import (
	"context"
	"testing"
	"time"

	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	mockRepo "licensing/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type revenueServiceFixtures struct {
	service      *revenueService
	businessRepo *mockRepo.MockBusinessRepository
	contractRepo *mockRepo.MockContractRepository
	rentRepo     *mockRepo.MockRentRepository
}

func createTestRevenueService(t *testing.T, now time.Time) revenueServiceFixtures {
	fx := revenueServiceFixtures{
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		contractRepo: mockRepo.NewMockContractRepository(t),
		rentRepo:     mockRepo.NewMockRentRepository(t),
	}

	srv := NewRevenueService(RevenueServiceParams{
		BusinessRepo: fx.businessRepo,
		ContractRepo: fx.contractRepo,
		RentRepo:     fx.rentRepo,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	}).(*revenueService)
	srv.now = func() time.Time { return now }
	fx.service = srv

	return fx
}

func TestRevenueService_TotalRevenue(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	fx := createTestRevenueService(t, now)
	ctx := context.Background()
	since := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)

	fx.contractRepo.EXPECT().SumPaidContracts(ctx).Return(decimal.NewFromInt(300000), nil)
	fx.rentRepo.EXPECT().SumPaidRents(ctx, (*time.Time)(nil)).Return(decimal.NewFromInt(75000), nil)
	fx.rentRepo.EXPECT().
		SumPaidRents(ctx, mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(since) })).
		Return(decimal.NewFromInt(25000), nil)

	revenue, err := fx.service.TotalRevenue(ctx, adminPrincipal)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(375000).Equal(revenue.TotalRevenue))
	assert.True(t, decimal.NewFromInt(300000).Equal(revenue.Breakdown.ContractRevenue))
	assert.True(t, decimal.NewFromInt(75000).Equal(revenue.Breakdown.TotalRentRevenue))
	assert.True(t, decimal.NewFromInt(25000).Equal(revenue.Breakdown.LastMonthRentRevenue))
}

func TestRevenueService_TotalRevenue_AdminOnly(t *testing.T) {
	fx := createTestRevenueService(t, time.Now())

	_, err := fx.service.TotalRevenue(context.Background(), entity.Principal{UserID: uuid.New(), Role: entity.RoleSupport})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRevenueService_UnpaidBusinesses(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	fx := createTestRevenueService(t, now)
	ctx := context.Background()

	noContract := &entity.Business{ID: uuid.New(), Owner: &entity.UserSummary{Username: "alice"}}
	overdue := &entity.Business{ID: uuid.New()}
	settled := &entity.Business{ID: uuid.New()}
	paid := &entity.Contract{Status: entity.ContractStatusPaid, Amount: decimal.NewFromInt(150000)}
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	approved := entity.BusinessStatusApproved
	fx.businessRepo.EXPECT().
		ListBusinesses(ctx, repository.BusinessFilter{Status: &approved}).
		Return([]*entity.Business{noContract, overdue, settled}, nil)

	fx.contractRepo.EXPECT().FindLatestContract(ctx, noContract.ID).Return(nil, repository.ErrContractNotFound)
	fx.rentRepo.EXPECT().FindLatestRent(ctx, noContract.ID).Return(nil, repository.ErrRentNotFound)

	fx.contractRepo.EXPECT().FindLatestContract(ctx, overdue.ID).Return(paid, nil)
	fx.rentRepo.EXPECT().FindLatestRent(ctx, overdue.ID).Return(&entity.Rent{Month: march, Status: entity.RentStatusPending, Amount: decimal.NewFromInt(25000)}, nil)

	fx.contractRepo.EXPECT().FindLatestContract(ctx, settled.ID).Return(paid, nil)
	fx.rentRepo.EXPECT().FindLatestRent(ctx, settled.ID).Return(&entity.Rent{Month: march, Status: entity.RentStatusPaid}, nil)

	unpaid, err := fx.service.UnpaidBusinesses(ctx, adminPrincipal)
	require.NoError(t, err)
	require.Len(t, unpaid, 2)

	assert.Equal(t, noContract, unpaid[0].Business)
	assert.True(t, unpaid[0].PaymentIssues.ContractUnpaid)
	assert.False(t, unpaid[0].PaymentIssues.RentOverdue)

	assert.Equal(t, overdue, unpaid[1].Business)
	assert.False(t, unpaid[1].PaymentIssues.ContractUnpaid)
	assert.True(t, unpaid[1].PaymentIssues.RentOverdue)
	require.NotNil(t, unpaid[1].PaymentIssues.LastRentDueDate)
	assert.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), *unpaid[1].PaymentIssues.LastRentDueDate)
}
