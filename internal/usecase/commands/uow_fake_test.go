//go:build unit

package commands_test

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/comment"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/shared"
)

// fakeUoW is an in-memory UnitOfWork. Every callback runs against the same
// maps, so "transactions" are trivially visible to later reads.
type fakeUoW struct {
	users    map[int64]*shared.UserSnapshot
	items    map[int64]*shared.ItemSnapshot
	bookings map[int64]*shared.BookingSnapshot
	comments map[int64]*comment.Comment
	nextID   int64
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		users:    map[int64]*shared.UserSnapshot{},
		items:    map[int64]*shared.ItemSnapshot{},
		bookings: map[int64]*shared.BookingSnapshot{},
		comments: map[int64]*comment.Comment{},
		nextID:   100,
	}
}

func (f *fakeUoW) seedUser(id int64, name string) {
	f.users[id] = &shared.UserSnapshot{ID: id, Name: name, Email: name + "@example.com"}
}

func (f *fakeUoW) seedItem(id, ownerID int64, available bool) {
	f.items[id] = &shared.ItemSnapshot{ID: id, Name: "Item", Available: available, OwnerID: ownerID}
}

func (f *fakeUoW) seedBooking(snap *shared.BookingSnapshot) {
	f.bookings[snap.ID] = snap
}

func (f *fakeUoW) allocID() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: f})
}

type fakeTx struct {
	store *fakeUoW
}

func (t *fakeTx) Users() shared.UserRepository       { return &fakeUserRepo{store: t.store} }
func (t *fakeTx) Items() shared.ItemRepository       { return &fakeItemRepo{store: t.store} }
func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Comments() shared.CommentRepository { return &fakeCommentRepo{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads         { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeReads struct {
	store *fakeUoW
}

func (r *fakeReads) UserByID(_ context.Context, id int64) (*shared.UserSnapshot, error) {
	if u, ok := r.store.users[id]; ok {
		return u, nil
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r *fakeReads) ItemByID(_ context.Context, id int64) (*shared.ItemSnapshot, error) {
	if it, ok := r.store.items[id]; ok {
		return it, nil
	}
	return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
}

func (r *fakeReads) BookingByID(_ context.Context, id int64) (*shared.BookingSnapshot, error) {
	if b, ok := r.store.bookings[id]; ok {
		return b, nil
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

type fakeUserRepo struct {
	store *fakeUoW
}

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (int64, error) {
	id := r.store.allocID()
	r.store.users[id] = &shared.UserSnapshot{ID: id, Name: u.Name(), Email: u.Email().String()}
	return id, nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ db.DBTX, u *user.User) error {
	r.store.users[u.ID()] = &shared.UserSnapshot{ID: u.ID(), Name: u.Name(), Email: u.Email().String()}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, _ db.DBTX, id int64) error {
	delete(r.store.users, id)
	return nil
}

type fakeItemRepo struct {
	store *fakeUoW
}

func (r *fakeItemRepo) Create(_ context.Context, _ db.DBTX, it *item.Item) (int64, error) {
	id := r.store.allocID()
	r.store.items[id] = &shared.ItemSnapshot{
		ID: id, Name: it.Name(), Description: it.Description(),
		Available: it.Available(), OwnerID: it.OwnerID(),
	}
	return id, nil
}

func (r *fakeItemRepo) Update(_ context.Context, _ db.DBTX, it *item.Item) error {
	r.store.items[it.ID()] = &shared.ItemSnapshot{
		ID: it.ID(), Name: it.Name(), Description: it.Description(),
		Available: it.Available(), OwnerID: it.OwnerID(),
	}
	return nil
}

type fakeBookingRepo struct {
	store *fakeUoW
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (int64, error) {
	id := r.store.allocID()
	r.store.bookings[id] = &shared.BookingSnapshot{
		ID:       id,
		Start:    b.Window().Start(),
		End:      b.Window().End(),
		ItemID:   b.ItemID(),
		BookerID: b.BookerID(),
		Status:   b.Status(),
	}
	if it, ok := r.store.items[b.ItemID()]; ok {
		r.store.bookings[id].ItemOwnerID = it.OwnerID
	}
	return id, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, id int64, from, to booking.Status) error {
	b, ok := r.store.bookings[id]
	if !ok || b.Status != from {
		return infra.WrapRepoErr("booking no longer in expected status", nil, infra.KindConflict)
	}
	b.Status = to
	return nil
}

type fakeCommentRepo struct {
	store *fakeUoW
}

func (r *fakeCommentRepo) Create(_ context.Context, _ db.DBTX, c *comment.Comment) (int64, error) {
	id := r.store.allocID()
	r.store.comments[id] = c
	return id, nil
}
