//go:build unit

package readstore

import (
	"testing"
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func renderFilter(t *testing.T, state queries.StateFilter) (string, []any) {
	t.Helper()
	ds := bookingSelect().Where(goqu.I("b.booker_id").Eq(3))
	if expr := stateFilterExpr(state, testNow); expr != nil {
		ds = ds.Where(expr)
	}
	sql, args, err := ds.Order(goqu.I("b.start_at").Desc()).Prepared(true).ToSQL()
	require.NoError(t, err)
	return sql, args
}

func TestStateFilterExpr(t *testing.T) {
	t.Run("ALLは追加条件なし", func(t *testing.T) {
		assert.Nil(t, stateFilterExpr(queries.StateAll, testNow))
	})

	t.Run("CURRENTは進行中のみ", func(t *testing.T) {
		sql, args := renderFilter(t, queries.StateCurrent)
		assert.Contains(t, sql, `"b"."start_at" <=`)
		assert.Contains(t, sql, `"b"."end_at" >`)
		assert.Contains(t, args, testNow)
	})

	t.Run("PASTは終了済みのみ", func(t *testing.T) {
		sql, args := renderFilter(t, queries.StatePast)
		assert.Contains(t, sql, `"b"."end_at" <`)
		assert.NotContains(t, sql, `"b"."start_at" <=`)
		assert.Contains(t, args, testNow)
	})

	t.Run("FUTUREは未開始のみ", func(t *testing.T) {
		sql, _ := renderFilter(t, queries.StateFuture)
		assert.Contains(t, sql, `"b"."start_at" >`)
	})

	t.Run("WAITINGとREJECTEDは状態一致", func(t *testing.T) {
		sql, args := renderFilter(t, queries.StateWaiting)
		assert.Contains(t, sql, `"b"."status" =`)
		assert.Contains(t, args, "WAITING")

		sql, args = renderFilter(t, queries.StateRejected)
		assert.Contains(t, sql, `"b"."status" =`)
		assert.Contains(t, args, "REJECTED")
	})
}

func TestBookingSelect(t *testing.T) {
	sql, args := renderFilter(t, queries.StateAll)

	t.Run("開始時刻の降順で返す", func(t *testing.T) {
		assert.Contains(t, sql, `ORDER BY "b"."start_at" DESC`)
	})

	t.Run("予約者とアイテムを結合して返す", func(t *testing.T) {
		assert.Contains(t, sql, `INNER JOIN "users" AS "u"`)
		assert.Contains(t, sql, `INNER JOIN "items" AS "i"`)
		assert.Contains(t, sql, `"i"."owner_id"`)
	})

	t.Run("プレースホルダはPostgres形式", func(t *testing.T) {
		assert.Contains(t, sql, "$1")
		assert.Len(t, args, 1)
	})
}
