package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sift"
	"sift/number"
	"sift/stats"
	"sift/table"
)

func TestQueryFilter(t *testing.T) {
	ctx, db := openTestDB(t)
	tbl := loadCities(t, ctx, db)

	rtx, err := db.ReadTx(ctx)
	require.NoError(t, err)
	defer rtx.Commit()

	rows, err := table.NewQuery(tbl).
		Filter(table.Cond("pop", "gt", number.Int64(100))).
		SortBy("pop", false).
		Find(ctx, rtx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first, err := rows[0].Field("city")
	require.NoError(t, err)
	second, err := rows[1].Field("city")
	require.NoError(t, err)
	assert.Equal(t, "cork", first)
	assert.Equal(t, "dublin", second)
}

func TestQueryConnectives(t *testing.T) {
	ctx, db := openTestDB(t)
	tbl := loadCities(t, ctx, db)

	rtx, err := db.ReadTx(ctx)
	require.NoError(t, err)
	defer rtx.Commit()

	t.Run("and", func(t *testing.T) {
		rows, err := table.NewQuery(tbl).
			Filter(table.And(
				table.Cond("pop", "gte", number.Int64(80)),
				table.Cond("temp", "lt", number.Float64(13)),
			)).
			Find(ctx, rtx)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("or", func(t *testing.T) {
		rows, err := table.NewQuery(tbl).
			Filter(table.Or(
				table.Cond("pop", "eq", number.Int64(20)),
				table.Cond("pop", "eq", number.Int64(555)),
			)).
			Find(ctx, rtx)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("not", func(t *testing.T) {
		rows, err := table.NewQuery(tbl).
			Filter(table.Not(table.Cond("pop", "gt", number.Int64(100)))).
			Find(ctx, rtx)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}

func TestQuerySortLimitOffset(t *testing.T) {
	ctx, db := openTestDB(t)
	tbl := loadCities(t, ctx, db)

	rtx, err := db.ReadTx(ctx)
	require.NoError(t, err)
	defer rtx.Commit()

	rows, err := table.NewQuery(tbl).
		SortBy("pop", true).
		Limit(2).
		Offset(1).
		Find(ctx, rtx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first, err := rows[0].Field("pop")
	require.NoError(t, err)
	second, err := rows[1].Field("pop")
	require.NoError(t, err)
	assert.Equal(t, "210", first)
	assert.Equal(t, "80", second)
}

func TestQueryRowsSource(t *testing.T) {
	ctx, db := openTestDB(t)
	tbl := loadCities(t, ctx, db)

	src := table.NewQuery(tbl).
		Filter(table.Cond("pop", "lte", number.Int64(210))).
		Rows(ctx)

	// the filtered result feeds the aggregation engine; the two-pass
	// variance reruns the query for its second cursor
	proj := func(r table.Row) (number.Value, error) {
		return r.Number("pop", number.KindFloat64)
	}
	avg, err := stats.Average(src, proj)
	require.NoError(t, err)
	assert.InDelta(t, (80.0+210.0+20.0)/3.0, avg.Float64(), 1e-9)

	variance, err := stats.VariancePop(src, proj)
	require.NoError(t, err)
	mean := (80.0 + 210.0 + 20.0) / 3.0
	want := ((80-mean)*(80-mean) + (210-mean)*(210-mean) + (20-mean)*(20-mean)) / 3.0
	assert.InDelta(t, want, variance.Float64(), 1e-6)

	n, err := sift.Count(src.Cursor())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
