package domain

import (
	"fmt"
	"strings"
	"time"
)

// Project is a client or project hours are billed against. Its name is the
// only identity it has; entries reference it by name and may outlive it.
type Project struct {
	Name string
}

// NormalizeProjectName trims surrounding whitespace and rejects names that
// cannot be stored one per line.
func NormalizeProjectName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidProjectName)
	}
	if strings.ContainsAny(name, "\r\n") {
		return "", fmt.Errorf("%w: %q contains a line break", ErrInvalidProjectName, name)
	}
	// The log separates project and hours with ": ".
	if strings.Contains(name, ": ") {
		return "", fmt.Errorf("%w: %q contains \": \"", ErrInvalidProjectName, name)
	}
	if strings.HasPrefix(name, SummarySentinel) {
		return "", fmt.Errorf("%w: %q reads as a summary header", ErrInvalidProjectName, name)
	}
	if before, _, ok := strings.Cut(name, " - "); ok && IsDateLed(before) {
		return "", fmt.Errorf("%w: %q reads as a log timestamp", ErrInvalidProjectName, name)
	}
	return name, nil
}

// IsDateLed reports whether the first whitespace field of s is a
// YYYY-MM-DD date.
func IsDateLed(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	_, err := time.Parse(DateLayout, fields[0])
	return err == nil
}
