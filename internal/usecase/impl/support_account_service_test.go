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
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type supportAccountFixtures struct {
	service          usecase.SupportAccountUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	mailer           *mockSvc.MockMailer
}

func createTestSupportAccountService(t *testing.T) supportAccountFixtures {
	fx := supportAccountFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		mailer:           mockSvc.NewMockMailer(t),
	}

	fx.service = NewSupportAccountService(SupportAccountServiceParams{
		TxManager: fx.txManager,
		UserRepo:  fx.userRepo,
		Hasher:    fx.hasher,
		Mailer:    fx.mailer,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestSupportAccountService_RequiresAdmin(t *testing.T) {
	fx := createTestSupportAccountService(t)
	ctx := context.Background()

	for _, principal := range []entity.Principal{supportPrincipal, {UserID: uuid.New(), Role: entity.RoleUser}} {
		_, err := fx.service.CreateSupport(ctx, principal, &usecase.CreateSupportInput{})
		require.ErrorIs(t, err, domainerrors.ErrForbidden)

		_, err = fx.service.ListSupport(ctx, principal)
		require.ErrorIs(t, err, domainerrors.ErrForbidden)

		require.ErrorIs(t, fx.service.DeactivateSupport(ctx, principal, uuid.New()), domainerrors.ErrForbidden)

		_, err = fx.service.ReactivateSupport(ctx, principal, uuid.New())
		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	}
}

func TestSupportAccountService_CreateSupport(t *testing.T) {
	fx := createTestSupportAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Support123!").Return("hash", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == entity.RoleSupport && user.Active && user.Email == "desk@example.com"
		})).
		Return(nil)

	user, err := fx.service.CreateSupport(ctx, adminPrincipal, &usecase.CreateSupportInput{
		Username:    "desk",
		Email:       "Desk@example.com",
		Password:    "Support123!",
		NationalID:  "MW-1001",
		DateOfBirth: time.Date(1985, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSupport, user.Role)
}

func TestSupportAccountService_CreateSupport_UsernameTaken(t *testing.T) {
	fx := createTestSupportAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Support123!").Return("hash", nil)
	fx.userRepo.EXPECT().CreateUser(ctx, mock.Anything).Return(repository.ErrDuplicateUsername)

	_, err := fx.service.CreateSupport(ctx, adminPrincipal, &usecase.CreateSupportInput{
		Username:    "desk",
		Email:       "desk@example.com",
		Password:    "Support123!",
		NationalID:  "MW-1001",
		DateOfBirth: time.Date(1985, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestSupportAccountService_ListSupport(t *testing.T) {
	fx := createTestSupportAccountService(t)
	ctx := context.Background()
	staff := []*entity.User{{ID: uuid.New(), Role: entity.RoleSupport}}

	fx.userRepo.EXPECT().ListUsersByRole(ctx, entity.RoleSupport).Return(staff, nil)

	got, err := fx.service.ListSupport(ctx, adminPrincipal)
	require.NoError(t, err)
	assert.Equal(t, staff, got)
}

func TestSupportAccountService_DeactivateSupport(t *testing.T) {
	fx := createTestSupportAccountService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleSupport, Active: true}

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("locked-hash", nil)
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.userRepo.EXPECT().UpdateAccountState(ctx, user.ID, "locked-hash", false).Return(nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, user.ID).Return(nil)

	require.NoError(t, fx.service.DeactivateSupport(ctx, adminPrincipal, user.ID))
}

func TestSupportAccountService_DeactivateSupport_RejectsNonSupportUser(t *testing.T) {
	fx := createTestSupportAccountService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	err := fx.service.DeactivateSupport(ctx, adminPrincipal, user.ID)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSupportAccountService_DeactivateSupport_UnknownUser(t *testing.T) {
	fx := createTestSupportAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	require.ErrorIs(t, fx.service.DeactivateSupport(ctx, adminPrincipal, id), domainerrors.ErrUserNotFound)
}

func TestSupportAccountService_ReactivateSupport(t *testing.T) {
	fx := createTestSupportAccountService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "desk", Email: "desk@example.com", Role: entity.RoleSupport}

	var hashed string
	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).RunAndReturn(func(password string) (string, error) {
		hashed = "hash-" + password

		return hashed, nil
	})
	fx.userRepo.EXPECT().
		UpdateAccountState(ctx, user.ID, mock.AnythingOfType("string"), true).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, passwordHash string, _ bool) error {
			assert.Equal(t, hashed, passwordHash)

			return nil
		})
	// Delivery failure still hands the password back to the admin.
	fx.mailer.EXPECT().
		SendTemporaryPassword(ctx, "desk@example.com", "desk", mock.AnythingOfType("string")).
		Return(errors.New("smtp timeout"))

	password, err := fx.service.ReactivateSupport(ctx, adminPrincipal, user.ID)
	require.NoError(t, err)
	assert.Len(t, password, temporaryPasswordSize)
	assert.Equal(t, "hash-"+password, hashed)
}

func TestSupportAccountService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username:    "root",
		Email:       "Admin@Example.com",
		Password:    "Bootstrap123!",
		NationalID:  "MW-0001",
		DateOfBirth: time.Date(1980, time.January, 2, 0, 0, 0, 0, time.UTC),
	}

	t.Run("creates when missing", func(t *testing.T) {
		fx := createTestSupportAccountService(t)
		fx.userRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("Bootstrap123!").Return("hash", nil)
		fx.userRepo.EXPECT().
			CreateUser(ctx, mock.MatchedBy(func(user *entity.User) bool {
				return user.Role == entity.RoleAdmin && user.Active
			})).
			Return(nil)

		user, created, err := fx.service.EnsureAdmin(ctx, input)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, entity.RoleAdmin, user.Role)
	})

	t.Run("existing admin is kept", func(t *testing.T) {
		fx := createTestSupportAccountService(t)
		admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
		fx.userRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(admin, nil)

		user, created, err := fx.service.EnsureAdmin(ctx, input)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Same(t, admin, user)
	})

	t.Run("email owned by a regular user", func(t *testing.T) {
		fx := createTestSupportAccountService(t)
		fx.userRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(&entity.User{Role: entity.RoleUser}, nil)

		_, _, err := fx.service.EnsureAdmin(ctx, input)
		require.ErrorIs(t, err, domainerrors.ErrConflict)
	})
}
