package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntryLine(t *testing.T) {
	e := TimeEntry{Date: "2024-01-01", Timestamp: "2024-01-01 09:00:00", Project: "Acme", Hours: 2.5}
	assert.Equal(t, "2024-01-01 09:00:00 - Acme: 2.5 hours", e.Line())

	e.Comment = "standup"
	e.Hours = 1
	assert.Equal(t, "2024-01-01 09:00:00 - Acme: 1.0 hours - standup", e.Line())
}

func TestSummaryRowLine(t *testing.T) {
	assert.Equal(t, "Beta: 3.0 hours", SummaryRowLine("Beta", 3))
}

func TestValidateComment(t *testing.T) {
	assert.NoError(t, ValidateComment(""))
	assert.NoError(t, ValidateComment("client call - follow up"))
	assert.ErrorIs(t, ValidateComment("line one\nline two"), ErrInvalidComment)
}

func TestBackdatedDate(t *testing.T) {
	now := time.Date(2024, 3, 1, 15, 30, 0, 0, time.Local)

	cases := []struct {
		daysAgo int
		want    string
	}{
		{0, "2024-03-01"},
		{1, "2024-02-29"},
		{2, "2024-02-28"},
		{3, "2024-02-27"},
	}
	for _, tc := range cases {
		got, err := BackdatedDate(now, tc.daysAgo)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestBackdatedDate_OutOfRange(t *testing.T) {
	now := time.Date(2024, 3, 1, 15, 30, 0, 0, time.Local)

	_, err := BackdatedDate(now, 4)
	assert.ErrorIs(t, err, ErrBackdateOutOfRange)

	_, err = BackdatedDate(now, -1)
	assert.ErrorIs(t, err, ErrBackdateOutOfRange)
}
