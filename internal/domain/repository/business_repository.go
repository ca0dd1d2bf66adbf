package repository

import (
	"context"

	"licensing/internal/domain/entity"
	"licensing/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business application is not found.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrDuplicateApplication is returned when the owner already has an application.
	ErrDuplicateApplication = errors.New("owner already has a business application")
	// ErrLocationAlreadyAssigned is returned when the business is not approved or already holds a location.
	ErrLocationAlreadyAssigned = errors.New("business is not eligible for a location")
)

// BusinessFilter narrows ListBusinesses.
type BusinessFilter struct {
	Status *entity.BusinessStatus
}

// BusinessStatusUpdate is an admin decision on an application.
type BusinessStatusUpdate struct {
	ID            uuid.UUID
	Status        entity.BusinessStatus
	AdminFeedback string
	// RentFee is written only when non-nil.
	RentFee *decimal.Decimal
}

// BusinessRepository defines the interface for business application persistence.
type BusinessRepository interface {
	// CreateBusiness persists a new application. Returns ErrDuplicateApplication if the owner already has one.
	CreateBusiness(ctx context.Context, business *entity.Business) error

	// FindBusinessByID retrieves an application by ID.
	FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindBusinessByOwner retrieves the single application of an owner.
	FindBusinessByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)

	// ListBusinesses returns applications with their owner summary, newest first.
	ListBusinesses(ctx context.Context, filter BusinessFilter) ([]*entity.Business, error)

	// UpdateApplication writes owner-editable fields and status.
	UpdateApplication(ctx context.Context, business *entity.Business) error

	// UpdateStatus applies an admin decision.
	UpdateStatus(ctx context.Context, update BusinessStatusUpdate) error

	// AssignLocation sets the location name only if the business is approved and has none.
	// Returns ErrLocationAlreadyAssigned when no row qualifies.
	AssignLocation(ctx context.Context, businessID uuid.UUID, locationName string) error
}
