package dategrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestViewMonthNavigation(t *testing.T) {
	t.Parallel()

	v := ViewMonth{Year: 2024, Month: time.January}
	assert.Equal(t, ViewMonth{Year: 2023, Month: time.December}, v.Prev())
	assert.Equal(t, ViewMonth{Year: 2024, Month: time.February}, v.Next())

	dec := ViewMonth{Year: 2024, Month: time.December}
	assert.Equal(t, ViewMonth{Year: 2025, Month: time.January}, dec.Next())
}

func TestViewMonthContains(t *testing.T) {
	t.Parallel()

	v := ViewMonthOf(NewDate(2024, time.March, 15))
	assert.True(t, v.Contains(NewDate(2024, time.March, 1)))
	assert.False(t, v.Contains(NewDate(2024, time.April, 1)))
	assert.False(t, v.Contains(NewDate(2023, time.March, 15)))
}

func TestViewMonthGrid(t *testing.T) {
	t.Parallel()

	v := ViewMonth{Year: 2024, Month: time.February}
	grid := v.Grid()
	// February 2024 starts on a Thursday and has 29 days.
	assert.Len(t, grid, 4+29)
}
