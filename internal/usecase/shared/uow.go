package shared

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/comment"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra/db"
)

type UnitOfWork interface {
	// Within: full read-validate-write transaction for command operations.
	// The query side reads through the readstores directly, so this is the
	// whole surface.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Bookings() BookingRepository
	Comments() CommentRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads resolves directory entries and booking rows into minimal
// snapshots for command-side validation.
type CommandReads interface {
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id int64) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id int64) (*BookingSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, u *user.User) error
	Delete(ctx context.Context, dbtx db.DBTX, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, it *item.Item) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, it *item.Item) error
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error)
	// UpdateStatus transitions a booking out of `from`. The predicate is part
	// of the statement, so a concurrent finalization surfaces as a conflict
	// instead of a silent double write.
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id int64, from, to booking.Status) error
}

type CommentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *comment.Comment) (int64, error)
}
