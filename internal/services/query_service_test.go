package services

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 日期区间是按天的闭区间，上界必须是严格小于end+1天，
// 否则end+1天零点整的订单会被错算进区间
func TestStartDataWithinHalfOpenUpperBound(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	sql, args, err := sq.Select("o.id").
		From("medicine_orders o").
		Where(startDataWithin(start, end)).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "o.start_data >= ?")
	assert.Contains(t, sql, "o.start_data < ?")
	assert.NotContains(t, sql, "o.start_data <= ?")

	require.Len(t, args, 2)
	assert.Equal(t, start, args[0])
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), args[1])
}
