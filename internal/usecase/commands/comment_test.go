//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCommentFixture(t *testing.T) (*fakeUoW, *queriesmock.MockBookingQueries, *clock.MockClock, commands.CommentCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := newFakeUoW()
	uow.seedUser(ownerID, "owner")
	uow.seedUser(renterID, "renter")
	uow.seedItem(itemID, ownerID, true)

	clk := clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	mockQueries := queriesmock.NewMockBookingQueries(ctrl)
	return uow, mockQueries, clk, commands.NewCommentCommands(uow, mockQueries, clk)
}

func TestCommentCommands_Create(t *testing.T) {
	ctx := context.Background()
	req := commands.CreateCommentRequest{ItemID: itemID, Text: "Great drill, well maintained."}

	t.Run("完了済みAPPROVED予約があればコメント可能", func(t *testing.T) {
		uow, mockQueries, clk, cmds := newCommentFixture(t)

		mockQueries.EXPECT().
			FindCompleted(ctx, renterID, itemID, booking.StatusApproved, clk.Now()).
			Return([]*queries.BookingView{{ID: 1}}, nil).Times(1)

		view, err := cmds.Create(ctx, req, renterID)
		require.NoError(t, err)
		assert.Equal(t, req.Text, view.Text)
		assert.Equal(t, "renter", view.AuthorName)
		assert.Equal(t, clk.Now(), view.Created)
		assert.Len(t, uow.comments, 1)
	})

	t.Run("完了済み予約がなければInvalidState", func(t *testing.T) {
		uow, mockQueries, _, cmds := newCommentFixture(t)

		mockQueries.EXPECT().
			FindCompleted(ctx, renterID, itemID, booking.StatusApproved, gomock.Any()).
			Return([]*queries.BookingView{}, nil).Times(1)

		_, err := cmds.Create(ctx, req, renterID)
		assert.ErrorIs(t, err, commands.ErrCommentNotAllowed)
		assert.Empty(t, uow.comments)
	})

	t.Run("存在しない利用者はNotFound", func(t *testing.T) {
		_, _, _, cmds := newCommentFixture(t)

		_, err := cmds.Create(ctx, req, 777)
		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("存在しないアイテムはNotFound", func(t *testing.T) {
		_, _, _, cmds := newCommentFixture(t)

		_, err := cmds.Create(ctx, commands.CreateCommentRequest{ItemID: 777, Text: "x"}, renterID)
		assert.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("空文のコメントNG", func(t *testing.T) {
		_, mockQueries, _, cmds := newCommentFixture(t)

		mockQueries.EXPECT().
			FindCompleted(ctx, renterID, itemID, booking.StatusApproved, gomock.Any()).
			Return([]*queries.BookingView{{ID: 1}}, nil).Times(1)

		_, err := cmds.Create(ctx, commands.CreateCommentRequest{ItemID: itemID, Text: "   "}, renterID)
		assert.ErrorIs(t, err, commands.ErrInvalidComment)
	})
}
