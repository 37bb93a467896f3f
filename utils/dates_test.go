package utils_test

import (
	"testing"
	"time"

	"digitaltailor-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	now := time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)
	tomorrow, err := utils.ParseISODate("2024-03-10", time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 1, utils.DaysBetween(now, tomorrow))
	assert.Equal(t, 0, utils.DaysBetween(now, utils.BeginningOfDay(now)))
	assert.Equal(t, -9, utils.DaysBetween(now, time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)))
}

func TestValidISODate(t *testing.T) {
	assert.True(t, utils.ValidISODate(""))
	assert.True(t, utils.ValidISODate("2024-02-29"))
	assert.False(t, utils.ValidISODate("2023-02-29"))
	assert.False(t, utils.ValidISODate("29/02/2024"))
}
