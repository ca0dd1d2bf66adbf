package postgres

import (
	"context"

	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/repository"
	"licensing/internal/errors"
	"licensing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateLocation persists a new location.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	locationM := &model.LocationModel{
		ID:        location.ID,
		Name:      location.Name,
		Available: location.Available,
	}

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLocationName
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.CreatedAt = locationM.CreatedAt

	return nil
}

// FindLocationByID retrieves a location by ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return toLocationDomain(&locationM), nil
}

// ListAvailableLocations returns free locations ordered by name.
func (repo *locationRepository) ListAvailableLocations(ctx context.Context) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("available = ?", true).
		Order("name ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list available locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// DeleteAvailableLocation deletes the location only while it is available.
func (repo *locationRepository) DeleteAvailableLocation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND available = ?", id, true).
		Delete(&model.LocationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing deleted: tell a missing row apart from an assigned one.
	if _, err := repo.FindLocationByID(ctx, id); err != nil {
		return err
	}

	return repository.ErrLocationUnavailable
}

// ReserveLocation flips available from true to false.
func (repo *locationRepository) ReserveLocation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ? AND available = ?", id, true).
		Update("available", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reserve location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationUnavailable
	}

	return nil
}

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:        data.ID,
		Name:      data.Name,
		Available: data.Available,
		CreatedAt: data.CreatedAt,
	}
}
