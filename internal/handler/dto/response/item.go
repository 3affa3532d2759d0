package response

import (
	"time"

	"gearshare/internal/usecase/queries"
)

type ItemResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Available   bool               `json:"available"`
	Comments    []*CommentResponse `json:"comments"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItemView(im *queries.ItemView) *ItemResponse {
	comments := make([]*CommentResponse, 0, len(im.Comments))
	for _, cm := range im.Comments {
		comments = append(comments, FromCommentView(cm))
	}
	return &ItemResponse{
		ID:          im.ID,
		Name:        im.Name,
		Description: im.Description,
		Available:   im.Available,
		Comments:    comments,
	}
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromItemView(v))
	}
	return out
}

func FromCommentView(cm *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         cm.ID,
		Text:       cm.Text,
		AuthorName: cm.AuthorName,
		Created:    cm.Created,
	}
}
