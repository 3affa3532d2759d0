package commands

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"
)

var (
	ErrUserNotFound            = errs.New("user not found")
	ErrItemNotFound            = errs.New("item not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrItemUnavailable         = errs.New("item not available for booking")
	ErrOwnItemBooking          = errs.New("owner cannot book own item")
	ErrInvalidTimeWindow       = errs.New("start must precede end")
	ErrNotItemOwner            = errs.New("only owner may change status")
	ErrBookingFinalized        = errs.New("booking already finalized")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, requesterID int64) (*queries.BookingView, error)
	// Decide applies the item owner's one-shot approve/reject decision.
	Decide(ctx context.Context, bookingID int64, approved bool, actorID int64) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
}

func NewBookingCommands(uow shared.UnitOfWork, bookingQueries queries.BookingQueries) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
	}
}

// Create validates in a fixed order inside one transaction: requester
// resolves, item resolves, item is available, requester is not the owner,
// start precedes end. The first violated rule decides the error.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest, requesterID int64) (*queries.BookingView, error) {
	var bookingID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, requesterID); derr != nil {
			return markNotFound(derr, ErrUserNotFound)
		}

		itemSnap, derr := tx.Reads().ItemByID(ctx, req.ItemID)
		if derr != nil {
			return markNotFound(derr, ErrItemNotFound)
		}
		if !itemSnap.Available {
			return ErrItemUnavailable
		}
		if itemSnap.OwnerID == requesterID {
			return ErrOwnItemBooking
		}

		entity, derr := booking.NewBooking(req.ItemID, requesterID, req.Start, req.End)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidTimeWindow)
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.hydrate(ctx, bookingID)
}

func (uc *bookingUseCaseImpl) Decide(ctx context.Context, bookingID int64, approved bool, actorID int64) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			return markNotFound(derr, ErrBookingNotFound)
		}
		if snap.ItemOwnerID != actorID {
			return ErrNotItemOwner
		}

		entity := booking.Reconstruct(snap.ID, snap.Start, snap.End, snap.ItemID, snap.BookerID, snap.Status)
		if derr = entity.Decide(approved); derr != nil {
			return errs.Mark(derr, ErrBookingFinalized)
		}

		derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, booking.StatusWaiting, entity.Status())
		if derr != nil {
			// A concurrent decision won the WAITING race.
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrBookingFinalized
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.hydrate(ctx, bookingID)
}

// Read-after-write: compose the response from the read store so the caller
// gets the booker and item hydrated.
func (uc *bookingUseCaseImpl) hydrate(ctx context.Context, bookingID int64) (*queries.BookingView, error) {
	view, err := uc.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
