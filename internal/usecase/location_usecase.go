package usecase

import (
	"context"

	"licensing/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationUsecase defines the interface for location allocation use cases
type LocationUsecase interface {
	// CreateLocation adds a new available location. Admin only.
	CreateLocation(ctx context.Context, principal entity.Principal, name string) (*entity.Location, error)

	// ListAvailableLocations returns locations that can still be applied for.
	ListAvailableLocations(ctx context.Context) ([]*entity.Location, error)

	// DeleteLocation removes a location that is not assigned. Admin only.
	DeleteLocation(ctx context.Context, principal entity.Principal, locationID uuid.UUID) error

	// ApplyForLocation assigns the location to the caller's approved business.
	// The location and the business change together or not at all.
	ApplyForLocation(ctx context.Context, principal entity.Principal, locationID uuid.UUID) (*entity.Business, error)
}
