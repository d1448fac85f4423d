package domain

import "iter"

// ProjectTotals maps project names to accumulated hours, ordered by the
// first time each project was added. The zero value is ready to use.
type ProjectTotals struct {
	order []string
	hours map[string]float64
}

// Add accumulates hours for project.
func (t *ProjectTotals) Add(project string, hours float64) {
	if t.hours == nil {
		t.hours = make(map[string]float64)
	}
	if _, ok := t.hours[project]; !ok {
		t.order = append(t.order, project)
	}
	t.hours[project] += hours
}

// Get returns the hours for project and whether it was present.
func (t ProjectTotals) Get(project string) (float64, bool) {
	h, ok := t.hours[project]
	return h, ok
}

// Projects returns project names in first-occurrence order.
func (t ProjectTotals) Projects() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of distinct projects.
func (t ProjectTotals) Len() int {
	return len(t.order)
}

// Sum adds every project's hours in first-occurrence order.
func (t ProjectTotals) Sum() float64 {
	var total float64
	for _, p := range t.order {
		total += t.hours[p]
	}
	return total
}

// All iterates projects and hours in first-occurrence order.
func (t ProjectTotals) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for _, p := range t.order {
			if !yield(p, t.hours[p]) {
				return
			}
		}
	}
}

// SummaryLines renders the totals as a summary block: the header followed by
// one row per project.
func (t ProjectTotals) SummaryLines() []string {
	lines := make([]string, 0, len(t.order)+1)
	lines = append(lines, SummaryHeader)
	for p, h := range t.All() {
		lines = append(lines, SummaryRowLine(p, h))
	}
	return lines
}

// DailyTotals is one day of a historic window.
type DailyTotals struct {
	Date   string
	Totals ProjectTotals
	Total  float64
}

// DayLog groups the entries written under one date, in log order.
type DayLog struct {
	Date    string
	Entries []TimeEntry
}
