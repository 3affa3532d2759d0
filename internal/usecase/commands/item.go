package commands

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"
)

var (
	ErrItemNotOwned = errs.New("item not owned by user")
	ErrInvalidItem  = errs.New("invalid item data")
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
}

// UpdateItemRequest is a partial update; nil fields are left untouched.
type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, req CreateItemRequest, ownerID int64) (*queries.ItemView, error)
	Update(ctx context.Context, itemID int64, req UpdateItemRequest, actorID int64) (*queries.ItemView, error)
}

type itemUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewItemCommands(uow shared.UnitOfWork) ItemCommands {
	return &itemUseCaseImpl{uow: uow}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, req CreateItemRequest, ownerID int64) (*queries.ItemView, error) {
	var view *queries.ItemView

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, ownerID); derr != nil {
			return markNotFound(derr, ErrUserNotFound)
		}

		entity, derr := item.NewItem(req.Name, req.Description, req.Available, ownerID)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidItem)
		}

		id, derr := tx.Items().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		view = itemToView(id, entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *itemUseCaseImpl) Update(ctx context.Context, itemID int64, req UpdateItemRequest, actorID int64) (*queries.ItemView, error) {
	var view *queries.ItemView

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ItemByID(ctx, itemID)
		if derr != nil {
			return markNotFound(derr, ErrItemNotFound)
		}
		if snap.OwnerID != actorID {
			return ErrItemNotOwned
		}

		entity := item.Reconstruct(snap.ID, snap.Name, snap.Description, snap.Available, snap.OwnerID)
		if req.Name != nil {
			if derr = entity.Rename(*req.Name); derr != nil {
				return errs.Mark(derr, ErrInvalidItem)
			}
		}
		if req.Description != nil {
			if derr = entity.Describe(*req.Description); derr != nil {
				return errs.Mark(derr, ErrInvalidItem)
			}
		}
		if req.Available != nil {
			entity.SetAvailable(*req.Available)
		}

		if derr = tx.Items().Update(ctx, tx.DB(), entity); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		view = itemToView(entity.ID(), entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func itemToView(id int64, entity *item.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          id,
		Name:        entity.Name(),
		Description: entity.Description(),
		Available:   entity.Available(),
		OwnerID:     entity.OwnerID(),
		Comments:    []*queries.CommentView{},
	}
}
