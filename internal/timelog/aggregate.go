package timelog

import (
	"iter"
	"slices"

	"github.com/alexanderramin/timely/internal/domain"
)

// DefaultHistoricDays is the number of distinct dates in a historic window.
const DefaultHistoricDays = 14

// Aggregate sums hours per project for entries dated date, or for every
// entry when date is empty. Projects keep first-occurrence order.
func Aggregate(entries iter.Seq[domain.TimeEntry], date string) domain.ProjectTotals {
	var totals domain.ProjectTotals
	for e := range entries {
		if date != "" && e.Date != date {
			continue
		}
		totals.Add(e.Project, e.Hours)
	}
	return totals
}

// AggregateDates sums hours per project for entries dated any of dates.
func AggregateDates(entries iter.Seq[domain.TimeEntry], dates ...string) domain.ProjectTotals {
	var totals domain.ProjectTotals
	for e := range entries {
		if slices.Contains(dates, e.Date) {
			totals.Add(e.Project, e.Hours)
		}
	}
	return totals
}

// HistoricTotals aggregates the windowSize most recent distinct dates, newest
// first. A non-positive windowSize falls back to DefaultHistoricDays.
func HistoricTotals(entries iter.Seq[domain.TimeEntry], windowSize int) []domain.DailyTotals {
	windowSize = domain.IntWithDefault(windowSize, DefaultHistoricDays)
	all := slices.Collect(entries)

	seen := make(map[string]struct{})
	var dates []string
	for _, e := range all {
		if _, ok := seen[e.Date]; ok {
			continue
		}
		seen[e.Date] = struct{}{}
		dates = append(dates, e.Date)
	}
	// YYYY-MM-DD sorts chronologically as a string.
	slices.Sort(dates)
	slices.Reverse(dates)
	if len(dates) > windowSize {
		dates = dates[:windowSize]
	}

	out := make([]domain.DailyTotals, 0, len(dates))
	for _, d := range dates {
		totals := Aggregate(slices.Values(all), d)
		out = append(out, domain.DailyTotals{
			Date:   d,
			Totals: totals,
			Total:  totals.Sum(),
		})
	}
	return out
}

// FilterDate yields only the entries dated date.
func FilterDate(entries iter.Seq[domain.TimeEntry], date string) iter.Seq[domain.TimeEntry] {
	return func(yield func(domain.TimeEntry) bool) {
		for e := range entries {
			if e.Date == date && !yield(e) {
				return
			}
		}
	}
}

// GroupByDate splits entries into runs that share a date, in log order. A
// date that reappears after another date starts a new group.
func GroupByDate(entries iter.Seq[domain.TimeEntry]) []domain.DayLog {
	var out []domain.DayLog
	for e := range entries {
		if n := len(out); n > 0 && out[n-1].Date == e.Date {
			out[n-1].Entries = append(out[n-1].Entries, e)
			continue
		}
		out = append(out, domain.DayLog{Date: e.Date, Entries: []domain.TimeEntry{e}})
	}
	return out
}
