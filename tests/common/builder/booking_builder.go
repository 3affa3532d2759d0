//go:build unit || e2e

package builder

import (
	"time"

	dombooking "gearshare/internal/domain/booking"
	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"
)

type BookingBuilder struct {
	ID          int64
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	BookerName  string
	BookerEmail string
	Start       time.Time
	End         time.Time
	Status      dombooking.Status
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	return &BookingBuilder{
		ID:          1,
		ItemID:      10,
		ItemName:    "Cordless Drill",
		ItemOwnerID: 2,
		BookerID:    3,
		BookerName:  "Renter",
		BookerEmail: "renter@example.com",
		Start:       start,
		End:         start.Add(48 * time.Hour),
		Status:      dombooking.StatusWaiting,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.ItemID, b.BookerID, b.Start, b.End)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status.String(),
		Booker: &queries.UserView{ID: b.BookerID, Name: b.BookerName, Email: b.BookerEmail},
		Item: &queries.ItemSummary{
			ID:        b.ItemID,
			Name:      b.ItemName,
			Available: true,
			OwnerID:   b.ItemOwnerID,
		},
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		Start:       b.Start,
		End:         b.End,
		ItemID:      b.ItemID,
		ItemOwnerID: b.ItemOwnerID,
		BookerID:    b.BookerID,
		Status:      b.Status,
	}
}
