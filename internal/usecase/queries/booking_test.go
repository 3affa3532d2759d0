//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStateFilter(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    queries.StateFilter
		wantErr bool
	}{
		{name: "空文字はALL", input: "", want: queries.StateAll},
		{name: "ALL", input: "ALL", want: queries.StateAll},
		{name: "小文字も許容", input: "current", want: queries.StateCurrent},
		{name: "混在ケースも許容", input: "FuTuRe", want: queries.StateFuture},
		{name: "PAST", input: "PAST", want: queries.StatePast},
		{name: "WAITING", input: "waiting", want: queries.StateWaiting},
		{name: "REJECTED", input: "REJECTED", want: queries.StateRejected},
		{name: "未知のキーワードNG", input: "BOGUS", wantErr: true},
		{name: "APPROVEDは状態フィルタではない", input: "APPROVED", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := queries.ParseStateFilter(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, queries.ErrUnknownState)
				assert.Contains(t, err.Error(), "unknown state: "+tc.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// fakeBookingStore records the filter arguments it receives.
type fakeBookingStore struct {
	byID       map[int64]*queries.BookingView
	lastFilter queries.StateFilter
	lastNow    time.Time
	result     []*queries.BookingView
}

func (s *fakeBookingStore) FindByID(_ context.Context, id int64) (*queries.BookingView, error) {
	if v, ok := s.byID[id]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (s *fakeBookingStore) FindByBooker(_ context.Context, _ int64, state queries.StateFilter, now time.Time) ([]*queries.BookingView, error) {
	s.lastFilter, s.lastNow = state, now
	return s.result, nil
}

func (s *fakeBookingStore) FindByOwner(_ context.Context, _ int64, state queries.StateFilter, now time.Time) ([]*queries.BookingView, error) {
	s.lastFilter, s.lastNow = state, now
	return s.result, nil
}

func (s *fakeBookingStore) FindCompleted(_ context.Context, _, _ int64, _ booking.Status, _ time.Time) ([]*queries.BookingView, error) {
	return s.result, nil
}

type fakeUserStore struct {
	known map[int64]bool
}

func (s *fakeUserStore) FindByID(_ context.Context, id int64) (*queries.UserView, error) {
	if s.known[id] {
		return &queries.UserView{ID: id}, nil
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (s *fakeUserStore) FindAll(_ context.Context) ([]*queries.UserView, error) {
	return nil, nil
}

func newQueriesFixture(view *queries.BookingView) (*fakeBookingStore, *clock.MockClock, queries.BookingQueries) {
	store := &fakeBookingStore{byID: map[int64]*queries.BookingView{}}
	if view != nil {
		store.byID[view.ID] = view
	}
	users := &fakeUserStore{known: map[int64]bool{2: true, 3: true}}
	clk := clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	return store, clk, queries.NewBookingQueries(store, users, clk)
}

func waitingView() *queries.BookingView {
	return &queries.BookingView{
		ID:     1,
		Status: "WAITING",
		Booker: &queries.UserView{ID: 3},
		Item:   &queries.ItemSummary{ID: 10, OwnerID: 2},
	}
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("予約者は閲覧できる", func(t *testing.T) {
		_, _, q := newQueriesFixture(waitingView())
		view, err := q.GetByID(ctx, 3, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), view.ID)
	})

	t.Run("アイテム所有者は閲覧できる", func(t *testing.T) {
		_, _, q := newQueriesFixture(waitingView())
		_, err := q.GetByID(ctx, 2, 1)
		assert.NoError(t, err)
	})

	t.Run("第三者はUnauthorized", func(t *testing.T) {
		_, _, q := newQueriesFixture(waitingView())
		_, err := q.GetByID(ctx, 99, 1)
		assert.ErrorIs(t, err, queries.ErrBookingAccess)
	})

	t.Run("存在しない予約はNotFound", func(t *testing.T) {
		_, _, q := newQueriesFixture(nil)
		_, err := q.GetByID(ctx, 3, 1)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("状態フィルタと現在時刻がストアへ渡る", func(t *testing.T) {
		store, clk, q := newQueriesFixture(nil)

		_, err := q.ListByBooker(ctx, 3, "current")
		require.NoError(t, err)
		assert.Equal(t, queries.StateCurrent, store.lastFilter)
		assert.Equal(t, clk.Now(), store.lastNow)
	})

	t.Run("空文字はALL扱い", func(t *testing.T) {
		store, _, q := newQueriesFixture(nil)

		_, err := q.ListByOwner(ctx, 2, "")
		require.NoError(t, err)
		assert.Equal(t, queries.StateAll, store.lastFilter)
	})

	t.Run("未知の状態はInvalidState", func(t *testing.T) {
		_, _, q := newQueriesFixture(nil)

		_, err := q.ListByBooker(ctx, 3, "BOGUS")
		assert.ErrorIs(t, err, queries.ErrUnknownState)
	})

	t.Run("存在しない利用者はNotFoundが状態検証より優先", func(t *testing.T) {
		_, _, q := newQueriesFixture(nil)

		_, err := q.ListByBooker(ctx, 777, "BOGUS")
		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}
