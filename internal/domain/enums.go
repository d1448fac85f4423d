package domain

// LineKind classifies a single raw line of the time log.
type LineKind string

const (
	LineEntry         LineKind = "entry"
	LineSummaryHeader LineKind = "summary_header"
	LineSummaryRow    LineKind = "summary_row"
	LineBlank         LineKind = "blank"
	LineMalformed     LineKind = "malformed"
)

// ScanMode controls how summary blocks affect entry iteration.
type ScanMode string

const (
	// ScanAll yields every entry line regardless of surrounding summary blocks.
	ScanAll ScanMode = "all"
	// ScanUntilSummary stops yielding entries at the first summary header that
	// follows at least one entry, so totals already captured in the log are
	// not counted again.
	ScanUntilSummary ScanMode = "until_summary"
)

// Backend selects the storage implementation behind the line stores.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)
