package readstore

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

// bookingSelect joins the booker and the item so every view comes back fully
// hydrated for response composition.
func bookingSelect() *goqu.SelectDataset {
	return pg.From(goqu.T("bookings").As("b")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("b.booker_id").Eq(goqu.I("u.id")))).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("b.item_id").Eq(goqu.I("i.id")))).
		Select(
			goqu.I("b.id"), goqu.I("b.start_at"), goqu.I("b.end_at"), goqu.I("b.status"),
			goqu.I("u.id"), goqu.I("u.name"), goqu.I("u.email"),
			goqu.I("i.id"), goqu.I("i.name"), goqu.I("i.description"), goqu.I("i.available"), goqu.I("i.owner_id"),
		)
}

// stateFilterExpr translates a list filter into a WHERE fragment. ALL yields
// nil: no extra predicate.
func stateFilterExpr(state queries.StateFilter, now time.Time) goqu.Expression {
	switch state {
	case queries.StateCurrent:
		return goqu.And(
			goqu.I("b.start_at").Lte(now),
			goqu.I("b.end_at").Gt(now),
		)
	case queries.StatePast:
		return goqu.I("b.end_at").Lt(now)
	case queries.StateFuture:
		return goqu.I("b.start_at").Gt(now)
	case queries.StateWaiting:
		return goqu.I("b.status").Eq(booking.StatusWaiting.String())
	case queries.StateRejected:
		return goqu.I("b.status").Eq(booking.StatusRejected.String())
	default:
		return nil
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	sql, args, err := bookingSelect().
		Where(goqu.I("b.id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	view, err := scanBookingRow(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByBooker(ctx context.Context, bookerID int64, state queries.StateFilter, now time.Time) ([]*queries.BookingView, error) {
	ds := bookingSelect().Where(goqu.I("b.booker_id").Eq(bookerID))
	return r.list(ctx, ds, state, now)
}

func (r *BookingReadStore) FindByOwner(ctx context.Context, ownerID int64, state queries.StateFilter, now time.Time) ([]*queries.BookingView, error) {
	ds := bookingSelect().Where(goqu.I("i.owner_id").Eq(ownerID))
	return r.list(ctx, ds, state, now)
}

func (r *BookingReadStore) FindCompleted(ctx context.Context, bookerID, itemID int64, status booking.Status, before time.Time) ([]*queries.BookingView, error) {
	ds := bookingSelect().
		Where(
			goqu.I("b.booker_id").Eq(bookerID),
			goqu.I("b.item_id").Eq(itemID),
			goqu.I("b.status").Eq(status.String()),
			goqu.I("b.end_at").Lt(before),
		).
		Order(goqu.I("b.start_at").Desc())

	return r.collect(ctx, ds, "failed to find completed bookings")
}

func (r *BookingReadStore) list(ctx context.Context, ds *goqu.SelectDataset, state queries.StateFilter, now time.Time) ([]*queries.BookingView, error) {
	if expr := stateFilterExpr(state, now); expr != nil {
		ds = ds.Where(expr)
	}
	ds = ds.Order(goqu.I("b.start_at").Desc())

	return r.collect(ctx, ds, "failed to list bookings")
}

func (r *BookingReadStore) collect(ctx context.Context, ds *goqu.SelectDataset, errMsg string) ([]*queries.BookingView, error) {
	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(errMsg, err)
	}
	defer rows.Close()

	result := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, scanErr := scanBookingRow(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr(errMsg, scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(errMsg, err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingRow(row rowScanner) (*queries.BookingView, error) {
	var (
		view   queries.BookingView
		booker queries.UserView
		it     queries.ItemSummary
	)
	err := row.Scan(
		&view.ID, &view.Start, &view.End, &view.Status,
		&booker.ID, &booker.Name, &booker.Email,
		&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	view.Booker = &booker
	view.Item = &it
	return &view, nil
}
