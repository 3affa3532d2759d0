package response

import (
	"time"

	"gearshare/internal/usecase/queries"
)

type BookingResponse struct {
	ID     int64          `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status string         `json:"status"`
	Booker *BookerSummary `json:"booker"`
	Item   *ItemSummary   `json:"item"`
}

type BookerSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

func FromBookingView(bm *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{
		ID:     bm.ID,
		Start:  bm.Start,
		End:    bm.End,
		Status: bm.Status,
	}
	if bm.Booker != nil {
		resp.Booker = &BookerSummary{
			ID:    bm.Booker.ID,
			Name:  bm.Booker.Name,
			Email: bm.Booker.Email,
		}
	}
	if bm.Item != nil {
		resp.Item = &ItemSummary{
			ID:          bm.Item.ID,
			Name:        bm.Item.Name,
			Description: bm.Item.Description,
			Available:   bm.Item.Available,
		}
	}
	return resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromBookingView(v))
	}
	return out
}
