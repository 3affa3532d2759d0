package queries

import (
	"context"
	"strings"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
)

var ErrItemNotFound = errs.New("item not found")

type ItemQueries interface {
	GetByID(ctx context.Context, id int64) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*ItemView, error)
	// Search matches available items whose name or description contains the
	// text, case-insensitively. A blank query yields an empty list.
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*ItemView, error)
	SearchAvailable(ctx context.Context, text string) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	store ItemReadStore
}

func NewItemQueries(store ItemReadStore) ItemQueries {
	return &itemQueriesImpl{store: store}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, id int64) (*ItemView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID int64) ([]*ItemView, error) {
	return q.store.FindByOwner(ctx, ownerID)
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*ItemView{}, nil
	}
	return q.store.SearchAvailable(ctx, text)
}
