package repository

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"

	"github.com/doug-martin/goqu/v9"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error) {
	sql, args, err := pg.Insert("bookings").
		Rows(goqu.Record{
			"start_at":  b.Window().Start(),
			"end_at":    b.Window().End(),
			"item_id":   b.ItemID(),
			"booker_id": b.BookerID(),
			"status":    b.Status().String(),
		}).
		Returning("id").
		Prepared(true).ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build booking insert", err)
	}

	var id int64
	if err := dbtx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// UpdateStatus only touches rows still in `from`. Losing the race to another
// finalizer is reported as a conflict, never as a second successful write.
func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id int64, from, to booking.Status) error {
	sql, args, err := pg.Update("bookings").
		Set(goqu.Record{"status": to.String()}).
		Where(
			goqu.C("id").Eq(id),
			goqu.C("status").Eq(from.String()),
		).
		Prepared(true).ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking status update", err)
	}

	tag, err := dbtx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking no longer in expected status", nil, infra.KindConflict)
	}
	return nil
}
