package usecase

import (
	"context"

	"licensing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApplicationInput is the owner-editable part of a business application.
type ApplicationInput struct {
	Name              string
	JustificationText string
}

// ApplicationDecisionInput is an admin decision on an application.
type ApplicationDecisionInput struct {
	Status        entity.BusinessStatus
	AdminFeedback string
	// RentFee is required when Status is approved.
	RentFee *decimal.Decimal
}

// BusinessUsecase defines the business application workflow.
type BusinessUsecase interface {
	// Register submits the caller's single application.
	Register(ctx context.Context, principal entity.Principal, input *ApplicationInput) (*entity.Business, error)

	// ListApplications returns every application with its owner, newest first. Admin only.
	ListApplications(ctx context.Context, principal entity.Principal, status *entity.BusinessStatus) ([]*entity.Business, error)

	// MyApplication returns the caller's application.
	MyApplication(ctx context.Context, principal entity.Principal) (*entity.Business, error)

	// Edit changes name and justification while the application is not approved.
	Edit(ctx context.Context, principal entity.Principal, businessID uuid.UUID, input *ApplicationInput) (*entity.Business, error)

	// UpdateStatus applies an admin decision and notifies the owner.
	UpdateStatus(ctx context.Context, principal entity.Principal, businessID uuid.UUID, input *ApplicationDecisionInput) (*entity.Business, error)
}
