package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed_TodayAndTimestamp(t *testing.T) {
	c := NewFixed(time.Date(2024, 1, 2, 9, 5, 7, 0, time.Local))
	assert.Equal(t, "2024-01-02", Today(c))
	assert.Equal(t, "2024-01-02 09:05:07", Timestamp(c))
}

func TestFixed_Advance(t *testing.T) {
	start := time.Date(2024, 1, 2, 23, 30, 0, 0, time.Local)
	c := NewFixed(start)
	c.Advance(time.Hour)
	assert.Equal(t, start.Add(time.Hour), c.Now())
	assert.Equal(t, "2024-01-03", Today(c))
}

func TestSystem_Now(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	assert.False(t, got.Before(before))
}
