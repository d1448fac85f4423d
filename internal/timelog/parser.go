// Package timelog parses, aggregates and appends to the plain-text time log.
//
// Entry lines look like
//
//	2024-01-01 09:00:00 - Acme: 2.5 hours - optional comment
//
// and are interleaved with summary blocks:
//
//	Total Time Worked:
//	Acme: 2.5 hours
//
// Parsing never fails: lines that do not fit either shape are classified as
// malformed and skipped by every aggregate.
package timelog

import (
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/timely/internal/domain"
)

const (
	entrySep = " - "
	nameSep  = ": "
)

// ParseLine classifies one raw line. Classification depends only on the line
// itself, never on its position in the log.
func ParseLine(raw string) domain.LogLine {
	line := strings.TrimSpace(raw)
	out := domain.LogLine{Raw: raw}

	switch {
	case line == "":
		out.Kind = domain.LineBlank
	case strings.HasPrefix(line, domain.SummarySentinel):
		out.Kind = domain.LineSummaryHeader
	default:
		// Only a date-led line is an entry candidate; summary rows may carry
		// " - " inside the project name.
		if timestamp, data, ok := strings.Cut(line, entrySep); ok && domain.IsDateLed(timestamp) {
			if e, ok := parseEntry(timestamp, data); ok {
				out.Kind = domain.LineEntry
				out.Entry = e
				return out
			}
			out.Kind = domain.LineMalformed
			return out
		}
		if project, hours, ok := parseProjectHours(line); ok {
			out.Kind = domain.LineSummaryRow
			out.Entry = domain.TimeEntry{Project: project, Hours: hours}
			return out
		}
		out.Kind = domain.LineMalformed
	}
	return out
}

// Parse lazily classifies every line in order.
func Parse(lines []string) iter.Seq[domain.LogLine] {
	return func(yield func(domain.LogLine) bool) {
		for _, raw := range lines {
			if !yield(ParseLine(raw)) {
				return
			}
		}
	}
}

// Entries yields the time entries of a classified log. In ScanUntilSummary
// mode iteration ends at the first summary header seen after an entry; a
// header before any entry (the bootstrap header) is ignored.
func Entries(lines iter.Seq[domain.LogLine], mode domain.ScanMode) iter.Seq[domain.TimeEntry] {
	return func(yield func(domain.TimeEntry) bool) {
		seenEntry := false
		for l := range lines {
			switch l.Kind {
			case domain.LineEntry:
				seenEntry = true
				if !yield(l.Entry) {
					return
				}
			case domain.LineSummaryHeader:
				if mode == domain.ScanUntilSummary && seenEntry {
					return
				}
			}
		}
	}
}

// ParseEntries is shorthand for Entries(Parse(lines), mode).
func ParseEntries(lines []string, mode domain.ScanMode) iter.Seq[domain.TimeEntry] {
	return Entries(Parse(lines), mode)
}

func parseEntry(timestamp, data string) (domain.TimeEntry, bool) {
	fields := strings.Fields(timestamp)

	project, rest, ok := strings.Cut(data, nameSep)
	if !ok || project == "" {
		return domain.TimeEntry{}, false
	}
	hours, ok := leadingHours(rest)
	if !ok {
		return domain.TimeEntry{}, false
	}
	_, comment, _ := strings.Cut(rest, entrySep)

	return domain.TimeEntry{
		Date:      fields[0],
		Timestamp: timestamp,
		Project:   project,
		Hours:     hours,
		Comment:   strings.TrimSpace(comment),
	}, true
}

// parseProjectHours reads "<project>: <hours>[ anything]". Tokens after the
// number are ignored.
func parseProjectHours(s string) (string, float64, bool) {
	project, rest, ok := strings.Cut(s, nameSep)
	if !ok || project == "" {
		return "", 0, false
	}
	hours, ok := leadingHours(rest)
	if !ok {
		return "", 0, false
	}
	return project, hours, true
}

// leadingHours parses the first whitespace token of s as a finite number.
func leadingHours(s string) (float64, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	hours, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, false
	}
	return hours, true
}
