package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a physical stall or plot that at most one business can occupy.
type Location struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}
