package commands

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"
)

var (
	ErrEmailTaken  = errs.New("email already in use")
	ErrInvalidUser = errs.New("invalid user data")
)

type CreateUserRequest struct {
	Name  string
	Email string
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (*queries.UserView, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*queries.UserView, error)
	Delete(ctx context.Context, id int64) error
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, req CreateUserRequest) (*queries.UserView, error) {
	entity, err := user.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUser)
	}

	var view *queries.UserView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		view = userToView(id, entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *userUseCaseImpl) Update(ctx context.Context, id int64, req UpdateUserRequest) (*queries.UserView, error) {
	var view *queries.UserView

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, id)
		if derr != nil {
			return markNotFound(derr, ErrUserNotFound)
		}

		email, derr := user.NewEmail(snap.Email)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		entity := user.Reconstruct(snap.ID, snap.Name, email)

		if req.Name != nil {
			if derr = entity.Rename(*req.Name); derr != nil {
				return errs.Mark(derr, ErrInvalidUser)
			}
		}
		if req.Email != nil {
			if derr = entity.ChangeEmail(*req.Email); derr != nil {
				return errs.Mark(derr, ErrInvalidUser)
			}
		}

		if derr = tx.Users().Update(ctx, tx.DB(), entity); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		view = userToView(entity.ID(), entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, id); derr != nil {
			return markNotFound(derr, ErrUserNotFound)
		}
		if derr := tx.Users().Delete(ctx, tx.DB(), id); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func userToView(id int64, entity *user.User) *queries.UserView {
	return &queries.UserView{
		ID:    id,
		Name:  entity.Name(),
		Email: entity.Email().String(),
	}
}
