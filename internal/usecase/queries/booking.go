package queries

import (
	"context"
	"strings"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("no access to this booking")
	ErrUnknownState    = errs.New("unknown state")
)

// StateFilter selects a slice of a user's bookings, either by time window
// relative to "now" or by exact status.
type StateFilter string

const (
	StateAll      StateFilter = "ALL"
	StateCurrent  StateFilter = "CURRENT"
	StatePast     StateFilter = "PAST"
	StateFuture   StateFilter = "FUTURE"
	StateWaiting  StateFilter = "WAITING"
	StateRejected StateFilter = "REJECTED"
)

// ParseStateFilter is case-insensitive. An empty state defaults to ALL, the
// behavior callers of the list endpoints rely on.
func ParseStateFilter(s string) (StateFilter, error) {
	if s == "" {
		return StateAll, nil
	}
	switch f := StateFilter(strings.ToUpper(s)); f {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return f, nil
	default:
		return "", errs.Mark(errs.Newf("unknown state: %s", s), ErrUnknownState)
	}
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID, id int64) (*BookingView, error)
	// GetByIDSystem skips authorization; for server-side read-after-write use.
	GetByIDSystem(ctx context.Context, id int64) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID int64, state string) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID int64, state string) ([]*BookingView, error)
	// FindCompleted returns bookings by a booker on an item in the given
	// status whose window ended strictly before the given instant. No
	// authorization; consumed by the comment eligibility gate.
	FindCompleted(ctx context.Context, bookerID, itemID int64, status booking.Status, before time.Time) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindByBooker(ctx context.Context, bookerID int64, state StateFilter, now time.Time) ([]*BookingView, error)
	FindByOwner(ctx context.Context, ownerID int64, state StateFilter, now time.Time) ([]*BookingView, error)
	FindCompleted(ctx context.Context, bookerID, itemID int64, status booking.Status, before time.Time) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	users UserReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		store: store,
		users: users,
		clock: clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, id int64) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	if actorID != view.Booker.ID && actorID != view.Item.OwnerID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id int64) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID int64, state string) ([]*BookingView, error) {
	filter, err := q.resolveListArgs(ctx, bookerID, state)
	if err != nil {
		return nil, err
	}
	return q.store.FindByBooker(ctx, bookerID, filter, q.clock.Now())
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, state string) ([]*BookingView, error) {
	filter, err := q.resolveListArgs(ctx, ownerID, state)
	if err != nil {
		return nil, err
	}
	return q.store.FindByOwner(ctx, ownerID, filter, q.clock.Now())
}

func (q *bookingQueriesImpl) FindCompleted(ctx context.Context, bookerID, itemID int64, status booking.Status, before time.Time) ([]*BookingView, error) {
	return q.store.FindCompleted(ctx, bookerID, itemID, status, before)
}

// The user must resolve before the state keyword is judged, so a missing
// user surfaces as not-found even for a bogus state.
func (q *bookingQueriesImpl) resolveListArgs(ctx context.Context, userID int64, state string) (StateFilter, error) {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return ParseStateFilter(state)
}
