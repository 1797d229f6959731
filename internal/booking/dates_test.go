package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDates(t *testing.T) {
	t.Run("single pair", func(t *testing.T) {
		got := ExpandDates("2026-09-01", "09:00", nil)
		assert.False(t, got.IsMultiDay)
		assert.Equal(t, []DateEntry{{Date: "2026-09-01", Time: "09:00"}}, got.Dates)
		assert.Equal(t, "2026-09-01", got.PrimaryDate)
		assert.Equal(t, "09:00", got.PrimaryTime)
	})

	t.Run("selection is sorted and primary is earliest", func(t *testing.T) {
		selected := []DateEntry{
			{Date: "2026-09-03", Time: "10:00"},
			{Date: "2026-09-01", Time: "10:00"},
			{Date: "2026-09-02", Time: "10:00"},
		}
		got := ExpandDates("", "", selected)
		assert.True(t, got.IsMultiDay)
		require.Len(t, got.Dates, 3)
		assert.Equal(t, "2026-09-01", got.Dates[0].Date)
		assert.Equal(t, "2026-09-03", got.Dates[2].Date)
		assert.Equal(t, "2026-09-01", got.PrimaryDate)
		// input selection must stay untouched
		assert.Equal(t, "2026-09-03", selected[0].Date)
	})

	t.Run("exactly one selected date is not multi-day", func(t *testing.T) {
		got := ExpandDates("", "", []DateEntry{{Date: "2026-09-05", Time: "08:00"}})
		assert.False(t, got.IsMultiDay)
		assert.Equal(t, "2026-09-05", got.PrimaryDate)
	})
}

func TestAddDate(t *testing.T) {
	t.Run("rejects duplicate calendar day", func(t *testing.T) {
		selected := []DateEntry{{Date: "2026-09-01", Time: "09:00"}}
		_, err := AddDate(selected, DateEntry{Date: "2026-09-01", Time: "14:00"})
		assert.Error(t, err)
	})

	t.Run("enforces the date cap", func(t *testing.T) {
		var selected []DateEntry
		var err error
		for i := 0; i < MaxBookingDates; i++ {
			selected, err = AddDate(selected, DateEntry{Date: string(rune('a' + i)), Time: "09:00"})
			require.NoError(t, err)
		}
		_, err = AddDate(selected, DateEntry{Date: "z", Time: "09:00"})
		assert.Error(t, err)
	})

	t.Run("appends otherwise", func(t *testing.T) {
		selected, err := AddDate(nil, DateEntry{Date: "2026-09-01", Time: "09:00"})
		require.NoError(t, err)
		assert.Len(t, selected, 1)
	})
}
