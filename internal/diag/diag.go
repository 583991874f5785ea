package diag

import "fmt"

// Source is the fixed tag attached to every diagnostic so editors and CI
// output can attribute findings to this tool.
const Source = "caplint"

// Severity classifies a finding. Structural parse failures are errors;
// content and style findings are warnings.
type Severity int

const (
	Error Severity = iota + 1
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Position is a zero-based line/character pair. Character counts bytes
// within the line, matching how the validator computes offsets.
type Position struct {
	Line      int
	Character int
}

// Range is a half-open [Start, End) span.
type Range struct {
	Start Position
	End   Position
}

// Diagnostic is one positioned finding.
type Diagnostic struct {
	Severity Severity
	Range    Range
	Message  string
	Source   string
}

// PositionFunc maps a flat byte offset in the document to a Position.
// The document owns the line table; everything downstream only sees this.
type PositionFunc func(offset int) Position

// Sink collects diagnostics in emission order up to a fixed cap. Once the
// cap is reached further pushes are dropped silently, which bounds output
// on pathological documents while parsing continues. A cap of zero keeps
// parsing but reports nothing.
type Sink struct {
	max   int
	items []Diagnostic
}

// NewSink returns a sink that accepts at most max diagnostics. Negative
// caps are treated as zero.
func NewSink(max int) *Sink {
	if max < 0 {
		max = 0
	}
	return &Sink{max: max}
}

// Push appends d unless the cap has been reached. It reports whether the
// diagnostic was kept.
func (s *Sink) Push(d Diagnostic) bool {
	if len(s.items) >= s.max {
		return false
	}
	if d.Source == "" {
		d.Source = Source
	}
	s.items = append(s.items, d)
	return true
}

// Errorf pushes an Error diagnostic spanning r.
func (s *Sink) Errorf(r Range, format string, args ...any) bool {
	return s.pushf(Error, r, format, args...)
}

// Warnf pushes a Warning diagnostic spanning r.
func (s *Sink) Warnf(r Range, format string, args ...any) bool {
	return s.pushf(Warning, r, format, args...)
}

func (s *Sink) pushf(sev Severity, r Range, format string, args ...any) bool {
	return s.Push(Diagnostic{Severity: sev, Range: r, Message: fmt.Sprintf(format, args...)})
}

// Len returns the number of collected diagnostics.
func (s *Sink) Len() int { return len(s.items) }

// Items returns the collected diagnostics in emission order.
func (s *Sink) Items() []Diagnostic { return s.items }

// HasErrors reports whether any collected diagnostic is an Error.
func (s *Sink) HasErrors() bool {
	for _, d := range s.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
