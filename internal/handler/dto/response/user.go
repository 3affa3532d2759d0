package response

import "gearshare/internal/usecase/queries"

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUserView(um *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:    um.ID,
		Name:  um.Name,
		Email: um.Email,
	}
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromUserView(v))
	}
	return out
}
