package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "licensing/internal/delivery/context"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/errors"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type locationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	notifier     usecase.NotificationUsecase
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	Notifier     usecase.NotificationUsecase
	Logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		notifier:     params.Notifier,
		logger:       params.Logger,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateLocation adds a new available location.
func (s *locationService) CreateLocation(ctx context.Context, principal entity.Principal, name string) (*entity.Location, error) {
	if !principal.HasRole(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithField("name")
	}

	location := &entity.Location{
		ID:        uuid.New(),
		Name:      name,
		Available: true,
		CreatedAt: time.Now(),
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		if errors.Is(err, repository.ErrDuplicateLocationName) {
			return nil, domainerrors.ErrLocationNameTaken
		}

		return nil, errors.Wrap(err, "failed to create location")
	}

	return location, nil
}

// ListAvailableLocations returns the locations nobody holds.
func (s *locationService) ListAvailableLocations(ctx context.Context) ([]*entity.Location, error) {
	locations, err := s.locationRepo.ListAvailableLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available locations")
	}

	return locations, nil
}

// DeleteLocation removes a location unless a business holds it.
func (s *locationService) DeleteLocation(ctx context.Context, principal entity.Principal, locationID uuid.UUID) error {
	if !principal.HasRole(entity.RoleAdmin) {
		return domainerrors.ErrForbidden
	}

	err := s.locationRepo.DeleteAvailableLocation(ctx, locationID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrLocationNotFound):
		return domainerrors.ErrLocationNotFound
	case errors.Is(err, repository.ErrLocationUnavailable):
		return domainerrors.ErrLocationInUse
	default:
		return errors.Wrap(err, "failed to delete location")
	}
}

// ApplyForLocation takes the location and assigns it to the caller's business in one transaction.
func (s *locationService) ApplyForLocation(ctx context.Context, principal entity.Principal, locationID uuid.UUID) (*entity.Business, error) {
	var (
		business *entity.Business
		location *entity.Location
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()
		locationRepo := repoFactory.NewLocationRepository()

		var err error
		business, err = businessRepo.FindBusinessByOwner(ctx, principal.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessNotApproved
			}

			return errors.Wrap(err, "failed to find business by owner")
		}

		if !business.IsApproved() {
			return domainerrors.ErrBusinessNotApproved
		}
		if business.HasLocation() {
			return domainerrors.ErrLocationAlreadyAssigned
		}

		location, err = locationRepo.FindLocationByID(ctx, locationID)
		if err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return domainerrors.ErrLocationNotFound
			}

			return errors.Wrap(err, "failed to find location")
		}

		if err := locationRepo.ReserveLocation(ctx, location.ID); err != nil {
			if errors.Is(err, repository.ErrLocationUnavailable) {
				return domainerrors.ErrLocationUnavailable
			}

			return errors.Wrap(err, "failed to reserve location")
		}

		if err := businessRepo.AssignLocation(ctx, business.ID, location.Name); err != nil {
			if errors.Is(err, repository.ErrLocationAlreadyAssigned) {
				return domainerrors.ErrLocationAlreadyAssigned
			}

			return errors.Wrap(err, "failed to assign location")
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Location application failed",
			slog.String("locationID", locationID.String()),
			slog.String("userID", principal.UserID.String()),
			slog.Any("error", err))

		return nil, err
	}

	name := location.Name
	business.Location = &name

	s.log(ctx).Info("Location assigned",
		slog.String("businessID", business.ID.String()),
		slog.String("location", name))

	_, err = s.notifier.Notify(ctx, &usecase.NotifyInput{
		RecipientID: business.OwnerID,
		Title:       "Location assigned",
		Message:     name + " has been assigned to " + business.Name + ".",
		Type:        entity.NotificationTypeSuccess,
		Link:        "/dashboard",
		Metadata:    map[string]any{"businessId": business.ID.String(), "locationId": location.ID.String()},
	})
	if err != nil {
		s.log(ctx).Warn("Failed to notify owner about location", slog.Any("error", err))
	}

	return business, nil
}
