package commands

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/comment"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"
)

var (
	ErrCommentNotAllowed = errs.New("no completed booking for this item")
	ErrInvalidComment    = errs.New("invalid comment")
)

type CreateCommentRequest struct {
	ItemID int64
	Text   string
}

type CommentCommands interface {
	Create(ctx context.Context, req CreateCommentRequest, authorID int64) (*queries.CommentView, error)
}

// commentUseCaseImpl is the comment eligibility gate layered on the booking
// engine's query surface: only a renter with a finished, owner-approved
// booking on the item may comment.
type commentUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewCommentCommands(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) CommentCommands {
	return &commentUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (uc *commentUseCaseImpl) Create(ctx context.Context, req CreateCommentRequest, authorID int64) (*queries.CommentView, error) {
	var view *queries.CommentView

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		author, derr := tx.Reads().UserByID(ctx, authorID)
		if derr != nil {
			return markNotFound(derr, ErrUserNotFound)
		}
		if _, derr = tx.Reads().ItemByID(ctx, req.ItemID); derr != nil {
			return markNotFound(derr, ErrItemNotFound)
		}

		ok, derr := uc.canComment(ctx, authorID, req.ItemID)
		if derr != nil {
			return derr
		}
		if !ok {
			return ErrCommentNotAllowed
		}

		entity, derr := comment.NewComment(req.Text, req.ItemID, authorID, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrInvalidComment)
		}

		id, derr := tx.Comments().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		view = &queries.CommentView{
			ID:         id,
			Text:       entity.Text(),
			AuthorName: author.Name,
			Created:    entity.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// canComment holds iff the author has at least one APPROVED booking on the
// item whose window ended strictly before now.
func (uc *commentUseCaseImpl) canComment(ctx context.Context, userID, itemID int64) (bool, error) {
	completed, err := uc.bookingQueries.FindCompleted(ctx, userID, itemID, booking.StatusApproved, uc.clock.Now())
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return len(completed) > 0, nil
}
