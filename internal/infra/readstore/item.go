package readstore

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

func itemSelect() *goqu.SelectDataset {
	return pg.From("items").
		Select("id", "name", "description", "available", "owner_id")
}

func (r *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	sql, args, err := itemSelect().
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item query", err)
	}

	var view queries.ItemView
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&view.ID, &view.Name, &view.Description, &view.Available, &view.OwnerID)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	comments, err := r.commentsByItemIDs(ctx, []int64{view.ID})
	if err != nil {
		return nil, err
	}
	view.Comments = comments[view.ID]
	if view.Comments == nil {
		view.Comments = []*queries.CommentView{}
	}
	return &view, nil
}

func (r *ItemReadStore) FindByOwner(ctx context.Context, ownerID int64) ([]*queries.ItemView, error) {
	ds := itemSelect().
		Where(goqu.C("owner_id").Eq(ownerID)).
		Order(goqu.C("id").Asc())

	items, err := r.collect(ctx, ds, "failed to list items by owner")
	if err != nil {
		return nil, err
	}
	if err := r.attachComments(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemReadStore) SearchAvailable(ctx context.Context, text string) ([]*queries.ItemView, error) {
	pattern := "%" + text + "%"
	ds := itemSelect().
		Where(
			goqu.C("available").IsTrue(),
			goqu.Or(
				goqu.C("name").ILike(pattern),
				goqu.C("description").ILike(pattern),
			),
		).
		Order(goqu.C("id").Asc())

	items, err := r.collect(ctx, ds, "failed to search items")
	if err != nil {
		return nil, err
	}
	if err := r.attachComments(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemReadStore) collect(ctx context.Context, ds *goqu.SelectDataset, errMsg string) ([]*queries.ItemView, error) {
	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(errMsg, err)
	}
	defer rows.Close()

	result := make([]*queries.ItemView, 0)
	for rows.Next() {
		var view queries.ItemView
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.Available, &view.OwnerID); err != nil {
			return nil, infra.WrapRepoErr(errMsg, err)
		}
		view.Comments = []*queries.CommentView{}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(errMsg, err)
	}
	return result, nil
}

func (r *ItemReadStore) attachComments(ctx context.Context, items []*queries.ItemView) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	grouped, err := r.commentsByItemIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, it := range items {
		if cs, ok := grouped[it.ID]; ok {
			it.Comments = cs
		}
	}
	return nil
}

func (r *ItemReadStore) commentsByItemIDs(ctx context.Context, itemIDs []int64) (map[int64][]*queries.CommentView, error) {
	sql, args, err := pg.From(goqu.T("comments").As("c")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("c.author_id").Eq(goqu.I("u.id")))).
		Select(goqu.I("c.id"), goqu.I("c.item_id"), goqu.I("c.text"), goqu.I("u.name"), goqu.I("c.created_at")).
		Where(goqu.I("c.item_id").In(itemIDs)).
		Order(goqu.I("c.created_at").Desc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build comment query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load comments", err)
	}
	defer rows.Close()

	grouped := make(map[int64][]*queries.CommentView)
	for rows.Next() {
		var (
			view   queries.CommentView
			itemID int64
		)
		if err := rows.Scan(&view.ID, &itemID, &view.Text, &view.AuthorName, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to load comments", err)
		}
		grouped[itemID] = append(grouped[itemID], &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load comments", err)
	}
	return grouped, nil
}
