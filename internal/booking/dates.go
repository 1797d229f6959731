package booking

import (
	"fmt"
	"sort"
)

// MaxBookingDates caps a multi-day selection.
const MaxBookingDates = 7

// DateSet is the canonical, chronologically ordered view of a booking's dates.
type DateSet struct {
	Dates       []DateEntry
	IsMultiDay  bool
	PrimaryDate string
	PrimaryTime string
}

// ExpandDates converts either a multi-day selection or a single date/time pair
// into the canonical ordered date list. Multi-day status is derived from the
// data alone: more than one date means multi-day, exactly one does not.
func ExpandDates(singleDate, singleTime string, selected []DateEntry) DateSet {
	if len(selected) > 0 {
		dates := make([]DateEntry, len(selected))
		copy(dates, selected)
		sort.SliceStable(dates, func(i, j int) bool {
			return dates[i].Date < dates[j].Date
		})
		return DateSet{
			Dates:       dates,
			IsMultiDay:  len(dates) > 1,
			PrimaryDate: dates[0].Date,
			PrimaryTime: dates[0].Time,
		}
	}

	return DateSet{
		Dates:       []DateEntry{{Date: singleDate, Time: singleTime}},
		PrimaryDate: singleDate,
		PrimaryTime: singleTime,
	}
}

// AddDate appends a date to an in-progress multi-day selection. The same
// calendar day cannot be picked twice and the selection is capped at
// MaxBookingDates. Used while the user edits the selection, not during final
// expansion.
func AddDate(selected []DateEntry, entry DateEntry) ([]DateEntry, error) {
	if len(selected) >= MaxBookingDates {
		return selected, fmt.Errorf("a booking can span at most %d dates", MaxBookingDates)
	}
	for _, d := range selected {
		if d.Date == entry.Date {
			return selected, fmt.Errorf("date %s is already selected", entry.Date)
		}
	}
	return append(selected, entry), nil
}
