package repository

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"

	"github.com/doug-martin/goqu/v9"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(ctx context.Context, dbtx db.DBTX, it *item.Item) (int64, error) {
	sql, args, err := pg.Insert("items").
		Rows(goqu.Record{
			"name":        it.Name(),
			"description": it.Description(),
			"available":   it.Available(),
			"owner_id":    it.OwnerID(),
		}).
		Returning("id").
		Prepared(true).ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build item insert", err)
	}

	var id int64
	if err := dbtx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, dbtx db.DBTX, it *item.Item) error {
	sql, args, err := pg.Update("items").
		Set(goqu.Record{
			"name":        it.Name(),
			"description": it.Description(),
			"available":   it.Available(),
		}).
		Where(goqu.C("id").Eq(it.ID())).
		Prepared(true).ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build item update", err)
	}

	tag, err := dbtx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
