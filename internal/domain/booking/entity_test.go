//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.Equal(t, b.ItemID, actual.ItemID())
		assert.Equal(t, b.BookerID, actual.BookerID())
		assert.Equal(t, b.Start, actual.Window().Start())
		assert.Equal(t, b.End, actual.Window().End())
		assert.False(t, actual.IsFinalized())
	})

	t.Run("時間窓の検証", func(t *testing.T) {
		now := time.Now()
		cases := []struct {
			name       string
			start, end time.Time
			wantErr    error
		}{
			{name: "start < end OK", start: now, end: now.Add(time.Hour)},
			{name: "start == end NG", start: now, end: now, wantErr: booking.ErrInvalidWindow},
			{name: "start > end NG", start: now.Add(time.Hour), end: now, wantErr: booking.ErrInvalidWindow},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.NewBooking(1, 2, tc.start, tc.end)
				if tc.wantErr != nil {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("ゼロ値の境界NG", func(t *testing.T) {
		_, err := booking.NewBooking(1, 2, time.Time{}, time.Now())
		assert.Error(t, err)
	})
}

func TestDecide(t *testing.T) {
	newWaiting := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		return b
	}

	t.Run("承認", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
		assert.True(t, b.IsFinalized())
	})

	t.Run("却下", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
		assert.True(t, b.IsFinalized())
	})

	t.Run("確定後の再決定NG", func(t *testing.T) {
		cases := []struct {
			name   string
			first  bool
			second bool
		}{
			{name: "承認後の再承認", first: true, second: true},
			{name: "承認後の却下", first: true, second: false},
			{name: "却下後の承認", first: false, second: true},
			{name: "却下後の再却下", first: false, second: false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := newWaiting(t)
				require.NoError(t, b.Decide(tc.first))
				before := b.Status()

				err := b.Decide(tc.second)
				assert.ErrorIs(t, err, booking.ErrFinalized)
				assert.Equal(t, before, b.Status())
			})
		}
	})

	t.Run("CANCELEDからの決定NG", func(t *testing.T) {
		b := booking.Reconstruct(1, time.Now(), time.Now().Add(time.Hour), 10, 3, booking.StatusCanceled)
		assert.ErrorIs(t, b.Decide(true), booking.ErrFinalized)
	})
}

func TestStatus(t *testing.T) {
	t.Run("遷移テーブル", func(t *testing.T) {
		cases := []struct {
			from, to booking.Status
			ok       bool
		}{
			{booking.StatusWaiting, booking.StatusApproved, true},
			{booking.StatusWaiting, booking.StatusRejected, true},
			{booking.StatusWaiting, booking.StatusCanceled, false},
			{booking.StatusApproved, booking.StatusRejected, false},
			{booking.StatusApproved, booking.StatusWaiting, false},
			{booking.StatusRejected, booking.StatusApproved, false},
			{booking.StatusCanceled, booking.StatusApproved, false},
		}

		for _, tc := range cases {
			assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to),
				"%s -> %s", tc.from, tc.to)
		}
	})

	t.Run("終端判定", func(t *testing.T) {
		assert.False(t, booking.StatusWaiting.IsTerminal())
		assert.True(t, booking.StatusApproved.IsTerminal())
		assert.True(t, booking.StatusRejected.IsTerminal())
		assert.True(t, booking.StatusCanceled.IsTerminal())
	})

	t.Run("ParseStatusは大文字小文字を無視", func(t *testing.T) {
		status, err := booking.ParseStatus("approved")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusApproved, status)

		_, err = booking.ParseStatus("UNKNOWN")
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

func TestWindow(t *testing.T) {
	now := time.Now()
	w, err := booking.NewWindow(now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)

	t.Run("Contains", func(t *testing.T) {
		assert.True(t, w.Contains(now))
		assert.True(t, w.Contains(now.Add(-time.Hour)), "start is inclusive")
		assert.False(t, w.Contains(now.Add(time.Hour)), "end is exclusive")
	})

	t.Run("IsPastとIsFuture", func(t *testing.T) {
		assert.True(t, w.IsPast(now.Add(2*time.Hour)))
		assert.False(t, w.IsPast(now.Add(time.Hour)), "end boundary is not past")
		assert.True(t, w.IsFuture(now.Add(-2*time.Hour)))
		assert.False(t, w.IsFuture(now.Add(-time.Hour)), "start boundary is not future")
	})
}
