package shared

import (
	"time"

	"gearshare/internal/domain/booking"
)

// Minimal snapshots for command read operations

type UserSnapshot struct {
	ID    int64
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
}

type BookingSnapshot struct {
	ID          int64
	Start       time.Time
	End         time.Time
	ItemID      int64
	ItemOwnerID int64
	BookerID    int64
	Status      booking.Status
}
