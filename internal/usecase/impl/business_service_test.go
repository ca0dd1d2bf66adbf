package impl

import (
	"context"
	"testing"

	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	mockRepo "licensing/internal/mocks/repository"
	mockUsecase "licensing/internal/mocks/usecase"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	businessRepo *mockRepo.MockBusinessRepository
	notifier     *mockUsecase.MockNotificationUsecase
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	t.Helper()

	businessRepo := mockRepo.NewMockBusinessRepository(t)
	notifier := mockUsecase.NewMockNotificationUsecase(t)

	srv, err := NewBusinessService(BusinessServiceParams{
		BusinessRepo: businessRepo,
		Notifier:     notifier,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	return businessServiceFixtures{
		service:      srv,
		businessRepo: businessRepo,
		notifier:     notifier,
	}
}

func TestBusinessService_Register(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}

	fx.businessRepo.EXPECT().
		CreateBusiness(ctx, mock.AnythingOfType("*entity.Business")).
		Return(nil)

	business, err := fx.service.Register(ctx, owner, &usecase.ApplicationInput{Name: " Lakeside Grocers ", JustificationText: "Fresh produce"})
	require.NoError(t, err)
	assert.Equal(t, "Lakeside Grocers", business.Name)
	assert.Equal(t, entity.BusinessStatusPending, business.Status)
	assert.True(t, decimal.NewFromInt(150000).Equal(business.ContractFee))
	assert.True(t, business.RentFee.IsZero())
	assert.Nil(t, business.Location)
}

func TestBusinessService_Register_Duplicate(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}

	fx.businessRepo.EXPECT().
		CreateBusiness(ctx, mock.AnythingOfType("*entity.Business")).
		Return(errors.Wrap(repository.ErrDuplicateApplication, "insert"))

	_, err := fx.service.Register(ctx, owner, &usecase.ApplicationInput{Name: "Shop", JustificationText: "Because"})
	require.ErrorIs(t, err, domainerrors.ErrApplicationExists)
}

func TestBusinessService_Register_Validation(t *testing.T) {
	fx := createTestBusinessService(t)

	_, err := fx.service.Register(context.Background(), entity.Principal{UserID: uuid.New()}, &usecase.ApplicationInput{Name: "  "})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBusinessService_ListApplications_AdminOnly(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	_, err := fx.service.ListApplications(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}, nil)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	status := entity.BusinessStatusPending
	fx.businessRepo.EXPECT().
		ListBusinesses(ctx, repository.BusinessFilter{Status: &status}).
		Return([]*entity.Business{{ID: uuid.New()}}, nil)

	list, err := fx.service.ListApplications(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}, &status)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBusinessService_Edit_ResetsMoreInfoToPending(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := &entity.Business{
		ID:            uuid.New(),
		OwnerID:       owner.UserID,
		Status:        entity.BusinessStatusMoreInfoRequested,
		AdminFeedback: "Add opening hours",
	}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.businessRepo.EXPECT().
		UpdateApplication(ctx, mock.MatchedBy(func(b *entity.Business) bool {
			return b.Status == entity.BusinessStatusPending && b.Name == "New name"
		})).
		Return(nil)

	updated, err := fx.service.Edit(ctx, owner, business.ID, &usecase.ApplicationInput{Name: "New name", JustificationText: "Open 8-17"})
	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusPending, updated.Status)
	assert.Equal(t, "Add opening hours", updated.AdminFeedback)
}

func TestBusinessService_Edit_RejectedKeepsStatus(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	business := &entity.Business{ID: uuid.New(), OwnerID: owner.UserID, Status: entity.BusinessStatusRejected}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.businessRepo.EXPECT().UpdateApplication(ctx, business).Return(nil)

	updated, err := fx.service.Edit(ctx, owner, business.ID, &usecase.ApplicationInput{Name: "n", JustificationText: "j"})
	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusRejected, updated.Status)
}

func TestBusinessService_Edit_Rejections(t *testing.T) {
	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleUser}
	input := &usecase.ApplicationInput{Name: "n", JustificationText: "j"}

	t.Run("approved is locked", func(t *testing.T) {
		fx := createTestBusinessService(t)
		business := &entity.Business{ID: uuid.New(), OwnerID: owner.UserID, Status: entity.BusinessStatusApproved}
		fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

		_, err := fx.service.Edit(ctx, owner, business.ID, input)
		require.ErrorIs(t, err, domainerrors.ErrApplicationLocked)
	})

	t.Run("other owner", func(t *testing.T) {
		fx := createTestBusinessService(t)
		business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New(), Status: entity.BusinessStatusPending}
		fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)

		_, err := fx.service.Edit(ctx, owner, business.ID, input)
		require.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
	})
}

func TestBusinessService_UpdateStatus_ApproveSetsRentFeeAndNotifies(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New(), Name: "Shop", Status: entity.BusinessStatusPending}
	fee := decimal.NewFromInt(25000)

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.businessRepo.EXPECT().
		UpdateStatus(ctx, repository.BusinessStatusUpdate{ID: business.ID, Status: entity.BusinessStatusApproved, RentFee: &fee}).
		Return(nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
			return in.RecipientID == business.OwnerID &&
				in.Type == entity.NotificationTypeSuccess &&
				in.Link == "/dashboard" &&
				in.Metadata["businessId"] == business.ID.String()
		})).
		Return(&entity.Notification{}, nil)

	updated, err := fx.service.UpdateStatus(ctx, admin, business.ID, &usecase.ApplicationDecisionInput{
		Status:  entity.BusinessStatusApproved,
		RentFee: &fee,
	})
	require.NoError(t, err)
	assert.True(t, fee.Equal(updated.RentFee))
	assert.True(t, updated.IsApproved())
}

func TestBusinessService_UpdateStatus_ReapprovalKeepsRentFee(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New(), Status: entity.BusinessStatusApproved, RentFee: decimal.NewFromInt(20000)}
	fee := decimal.NewFromInt(99999)

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.businessRepo.EXPECT().
		UpdateStatus(ctx, repository.BusinessStatusUpdate{ID: business.ID, Status: entity.BusinessStatusApproved}).
		Return(nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Return(&entity.Notification{}, nil)

	updated, err := fx.service.UpdateStatus(ctx, admin, business.ID, &usecase.ApplicationDecisionInput{Status: entity.BusinessStatusApproved, RentFee: &fee})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20000).Equal(updated.RentFee))
}

func TestBusinessService_UpdateStatus_ApproveWithoutFee(t *testing.T) {
	fx := createTestBusinessService(t)
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	zero := decimal.Zero

	_, err := fx.service.UpdateStatus(context.Background(), admin, uuid.New(), &usecase.ApplicationDecisionInput{Status: entity.BusinessStatusApproved})
	require.ErrorIs(t, err, domainerrors.ErrRentFeeRequired)

	_, err = fx.service.UpdateStatus(context.Background(), admin, uuid.New(), &usecase.ApplicationDecisionInput{Status: entity.BusinessStatusApproved, RentFee: &zero})
	require.ErrorIs(t, err, domainerrors.ErrRentFeeRequired)
}

func TestBusinessService_UpdateStatus_NotifyFailureIsIgnored(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New(), Status: entity.BusinessStatusPending}

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	fx.businessRepo.EXPECT().UpdateStatus(ctx, mock.AnythingOfType("repository.BusinessStatusUpdate")).Return(nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool { return in.Type == entity.NotificationTypeError })).
		Return(nil, errors.New("db down"))

	updated, err := fx.service.UpdateStatus(ctx, admin, business.ID, &usecase.ApplicationDecisionInput{Status: entity.BusinessStatusRejected, AdminFeedback: "Incomplete"})
	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusRejected, updated.Status)
}

func TestBusinessService_UpdateStatus_NonAdmin(t *testing.T) {
	fx := createTestBusinessService(t)

	_, err := fx.service.UpdateStatus(context.Background(), entity.Principal{UserID: uuid.New(), Role: entity.RoleSupport}, uuid.New(), &usecase.ApplicationDecisionInput{Status: entity.BusinessStatusRejected})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}
