package contract

import "time"

// LogTimeRequest records hours against a registered project. DaysAgo selects
// the entry date relative to today (0 = today); Date, when set, overrides it.
// At, when set, stamps the entry at that exact moment and wins over both.
type LogTimeRequest struct {
	Project string
	Hours   float64
	DaysAgo int
	Date    string
	At      time.Time
	Comment string
}

func NewLogTimeRequest(project string, hours float64) LogTimeRequest {
	return LogTimeRequest{
		Project: project,
		Hours:   hours,
	}
}

type LogTimeErrorCode string

const (
	LogTimeErrUnknownProject LogTimeErrorCode = "UNKNOWN_PROJECT"
	LogTimeErrOutOfRange     LogTimeErrorCode = "BACKDATE_OUT_OF_RANGE"
)

type LogTimeError struct {
	Code    LogTimeErrorCode
	Message string
	Err     error
}

func (e *LogTimeError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *LogTimeError) Unwrap() error {
	return e.Err
}
