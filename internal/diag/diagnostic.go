package diag

import (
	"letcalc/internal/source"
)

// Note points at a secondary location that explains the diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
