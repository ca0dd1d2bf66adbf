package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BusinessStatus is the approval state of a business application.
type BusinessStatus string

const (
	BusinessStatusPending           BusinessStatus = "pending"
	BusinessStatusApproved          BusinessStatus = "approved"
	BusinessStatusRejected          BusinessStatus = "rejected"
	BusinessStatusMoreInfoRequested BusinessStatus = "more-info-requested"
)

// IsValid checks if the status is one of the known application states.
func (s BusinessStatus) IsValid() bool {
	switch s {
	case BusinessStatusPending, BusinessStatusApproved, BusinessStatusRejected, BusinessStatusMoreInfoRequested:
		return true
	default:
		return false
	}
}

// Business is a user's application to operate a business and, once approved,
// the record fees and a location are attached to.
type Business struct {
	ID                uuid.UUID       `json:"id"`
	OwnerID           uuid.UUID       `json:"ownerId"`
	Name              string          `json:"name"`
	Location          *string         `json:"location"` // Location name, nil until assigned.
	JustificationText string          `json:"justificationText"`
	Status            BusinessStatus  `json:"status"`
	AdminFeedback     string          `json:"adminFeedback"`
	ContractFee       decimal.Decimal `json:"contractFee"`
	RentFee           decimal.Decimal `json:"rentFee"` // Zero until approval.
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`

	Owner *UserSummary `json:"owner,omitempty"`
}

// IsApproved reports whether the application has been approved.
func (b *Business) IsApproved() bool {
	return b.Status == BusinessStatusApproved
}

// HasLocation reports whether a location has been assigned.
func (b *Business) HasLocation() bool {
	return b.Location != nil && *b.Location != ""
}
