package domain

import "errors"

var (
	// ErrInvalidProjectName is returned for empty or multi-line project names.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrInvalidHours is returned for negative or non-finite hour values.
	ErrInvalidHours = errors.New("invalid hours")

	// ErrInvalidComment is returned for comments that would span lines.
	ErrInvalidComment = errors.New("invalid comment")

	// ErrBackdateOutOfRange is returned when an entry date falls outside the
	// manual entry window.
	ErrBackdateOutOfRange = errors.New("date outside manual entry window")
)

// ErrUnknownProject is returned when time is logged against a project that
// is not registered.
var ErrUnknownProject = errors.New("unknown project")
