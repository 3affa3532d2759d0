package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidWindow  = errors.New("start must precede end")
	ErrInvalidStatus  = errors.New("invalid booking status")
	ErrFinalized      = errors.New("booking already finalized")
	ErrSelfBooking    = errors.New("owner cannot book own item")
	ErrItemNotForRent = errors.New("item not available for booking")
)

// Booking is a reservation of an item by a user for a time window. The store
// exclusively owns booking records; an entity instance never outlives the
// operation that loaded it.
type Booking struct {
	id       int64
	window   Window
	itemID   int64
	bookerID int64
	status   Status
}

// NewBooking creates a WAITING booking request. The item-level checks
// (availability, self-booking) belong to the use case, which holds the item
// snapshot; this constructor owns the temporal invariant.
func NewBooking(itemID, bookerID int64, start, end time.Time) (*Booking, error) {
	window, err := NewWindow(start, end)
	if err != nil {
		return nil, err
	}

	return &Booking{
		window:   window,
		itemID:   itemID,
		bookerID: bookerID,
		status:   StatusWaiting,
	}, nil
}

func Reconstruct(id int64, start, end time.Time, itemID, bookerID int64, status Status) *Booking {
	return &Booking{
		id:       id,
		window:   Window{start: start, end: end},
		itemID:   itemID,
		bookerID: bookerID,
		status:   status,
	}
}

// Decide applies the owner's approve/reject decision. It is a one-shot
// transition: anything other than WAITING fails with ErrFinalized.
func (b *Booking) Decide(approved bool) error {
	target := StatusRejected
	if approved {
		target = StatusApproved
	}
	if !b.status.CanTransitionTo(target) {
		return ErrFinalized
	}
	b.status = target
	return nil
}

func (b *Booking) IsFinalized() bool {
	return b.status.IsTerminal()
}

func (b *Booking) ID() int64       { return b.id }
func (b *Booking) Window() Window  { return b.window }
func (b *Booking) ItemID() int64   { return b.itemID }
func (b *Booking) BookerID() int64 { return b.bookerID }
func (b *Booking) Status() Status  { return b.status }
