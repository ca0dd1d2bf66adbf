package repository

import (
	"context"

	"licensing/internal/domain/entity"
	"licensing/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrDuplicateLocationName is returned when a location name is already used.
	ErrDuplicateLocationName = errors.New("location name already exists")
	// ErrLocationUnavailable is returned when a location is already taken.
	ErrLocationUnavailable = errors.New("location is not available")
)

// LocationRepository defines the interface for location persistence.
type LocationRepository interface {
	// CreateLocation persists a new location. Returns ErrDuplicateLocationName on conflict.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// ListAvailableLocations returns locations with available = true ordered by name.
	ListAvailableLocations(ctx context.Context) ([]*entity.Location, error)

	// DeleteAvailableLocation deletes the location only while it is available.
	// Returns ErrLocationNotFound if missing and ErrLocationUnavailable if assigned.
	DeleteAvailableLocation(ctx context.Context, id uuid.UUID) error

	// ReserveLocation flips available from true to false.
	// Returns ErrLocationUnavailable when the location was not available.
	ReserveLocation(ctx context.Context, id uuid.UUID) error
}
