package impl

import (
	"context"
	"log/slog"
	"time"

	"licensing/config"
	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/billing"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/errors"
	"licensing/internal/usecase"

	"go.uber.org/fx"
)

type revenueService struct {
	businessRepo repository.BusinessRepository
	contractRepo repository.ContractRepository
	rentRepo     repository.RentRepository
	dueDay       int
	logger       *slog.Logger
	now          func() time.Time
}

// RevenueServiceParams holds dependencies for RevenueService, injected by Fx.
type RevenueServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	ContractRepo repository.ContractRepository
	RentRepo     repository.RentRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRevenueService creates the admin revenue usecase.
func NewRevenueService(params RevenueServiceParams) usecase.RevenueUsecase {
	dueDay := billing.DefaultDueDay
	if params.Config != nil && params.Config.Billing != nil {
		dueDay = params.Config.Billing.RentDueDay
	}

	return &revenueService{
		businessRepo: params.BusinessRepo,
		contractRepo: params.ContractRepo,
		rentRepo:     params.RentRepo,
		dueDay:       dueDay,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *revenueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TotalRevenue sums every paid contract and rent.
func (srv *revenueService) TotalRevenue(ctx context.Context, principal entity.Principal) (*entity.Revenue, error) {
	if !principal.HasRole(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}

	contracts, err := srv.contractRepo.SumPaidContracts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum paid contracts")
	}

	rents, err := srv.rentRepo.SumPaidRents(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum paid rents")
	}

	since := srv.now().AddDate(0, -1, 0)
	lastMonth, err := srv.rentRepo.SumPaidRents(ctx, &since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum last month rents")
	}

	return &entity.Revenue{
		TotalRevenue: contracts.Add(rents),
		Breakdown: entity.RevenueBreakdown{
			ContractRevenue:      contracts,
			LastMonthRentRevenue: lastMonth,
			TotalRentRevenue:     rents,
		},
	}, nil
}

// UnpaidBusinesses lists approved businesses with an unpaid contract or an overdue rent.
func (srv *revenueService) UnpaidBusinesses(ctx context.Context, principal entity.Principal) ([]*entity.UnpaidBusiness, error) {
	if !principal.HasRole(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}

	approved := entity.BusinessStatusApproved
	businesses, err := srv.businessRepo.ListBusinesses(ctx, repository.BusinessFilter{Status: &approved})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved businesses")
	}

	now := srv.now()
	unpaid := make([]*entity.UnpaidBusiness, 0)

	for _, business := range businesses {
		contract, err := srv.contractRepo.FindLatestContract(ctx, business.ID)
		if err != nil && !errors.Is(err, repository.ErrContractNotFound) {
			return nil, errors.Wrap(err, "failed to find latest contract")
		}

		rent, err := srv.rentRepo.FindLatestRent(ctx, business.ID)
		if err != nil && !errors.Is(err, repository.ErrRentNotFound) {
			return nil, errors.Wrap(err, "failed to find latest rent")
		}

		issues := billing.Evaluate(contract, rent, now, srv.dueDay)
		if !issues.Unpaid() {
			continue
		}

		unpaid = append(unpaid, &entity.UnpaidBusiness{Business: business, PaymentIssues: issues})
	}

	srv.log(ctx).Debug("Evaluated delinquent businesses",
		slog.Int("approved", len(businesses)),
		slog.Int("unpaid", len(unpaid)))

	return unpaid, nil
}
