package repository

import (
	"context"

	"gearshare/internal/domain/comment"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"

	"github.com/doug-martin/goqu/v9"
)

type CommentRepository struct{}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Create(ctx context.Context, dbtx db.DBTX, c *comment.Comment) (int64, error) {
	sql, args, err := pg.Insert("comments").
		Rows(goqu.Record{
			"text":       c.Text(),
			"item_id":    c.ItemID(),
			"author_id":  c.AuthorID(),
			"created_at": c.CreatedAt(),
		}).
		Returning("id").
		Prepared(true).ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build comment insert", err)
	}

	var id int64
	if err := dbtx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}
