package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus is the progress of a support ticket.
type TicketStatus string

const (
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusArchived   TicketStatus = "archived"
)

var ticketStatusOrder = map[TicketStatus]int{
	TicketStatusPending:    0,
	TicketStatusInProgress: 1,
	TicketStatusResolved:   2,
	TicketStatusArchived:   3,
}

// IsValid checks if the status is known.
func (s TicketStatus) IsValid() bool {
	_, ok := ticketStatusOrder[s]

	return ok
}

// CanMoveTo reports whether next is strictly ahead of s.
func (s TicketStatus) CanMoveTo(next TicketStatus) bool {
	return next.IsValid() && ticketStatusOrder[next] > ticketStatusOrder[s]
}

// ReportStatus is the progress of a user report.
type ReportStatus string

const (
	ReportStatusPending     ReportStatus = "pending"
	ReportStatusUnderReview ReportStatus = "under-review"
	ReportStatusResolved    ReportStatus = "resolved"
	ReportStatusArchived    ReportStatus = "archived"
)

var reportStatusOrder = map[ReportStatus]int{
	ReportStatusPending:     0,
	ReportStatusUnderReview: 1,
	ReportStatusResolved:    2,
	ReportStatusArchived:    3,
}

// IsValid checks if the status is known.
func (s ReportStatus) IsValid() bool {
	_, ok := reportStatusOrder[s]

	return ok
}

// CanMoveTo reports whether next is strictly ahead of s.
func (s ReportStatus) CanMoveTo(next ReportStatus) bool {
	return next.IsValid() && reportStatusOrder[next] > reportStatusOrder[s]
}

// Attachment is a stored upload referenced by a ticket or report.
type Attachment struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	MimeType string `json:"mimetype"`
}

// Resolution records who closed a ticket or report and why.
type Resolution struct {
	Comment    string    `json:"comment"`
	ResolvedAt time.Time `json:"resolvedAt"`
	ResolvedBy uuid.UUID `json:"resolvedBy"`
}

// Ticket is a support request raised by a user.
type Ticket struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"userId"`
	Subject     string       `json:"subject"`
	Description string       `json:"description"`
	Attachments []Attachment `json:"attachments"`
	Status      TicketStatus `json:"status"`
	AssignedTo  *uuid.UUID   `json:"assignedTo"`
	Resolution  *Resolution  `json:"resolution"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	User *UserSummary `json:"user,omitempty"`
}

// UserReport is a complaint one user files about another.
type UserReport struct {
	ID             uuid.UUID    `json:"id"`
	ReporterID     uuid.UUID    `json:"reporterId"`
	ReportedUserID uuid.UUID    `json:"reportedUserId"`
	Subject        string       `json:"subject"`
	Description    string       `json:"description"`
	Attachments    []Attachment `json:"attachments"`
	Status         ReportStatus `json:"status"`
	Resolution     *Resolution  `json:"resolution"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`

	Reporter     *UserSummary `json:"reporter,omitempty"`
	ReportedUser *UserSummary `json:"reportedUser,omitempty"`
}
