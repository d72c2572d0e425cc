// Package diag carries non-fatal compilation diagnostics from the compiler
// packages to whatever surfaces them (CLI output, build logs, tests).
package diag

import "fmt"

// Severity ranks a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Diagnostic codes.
const (
	// CodeDeprecatedTag flags the retired #ReswPlusTyped directive.
	CodeDeprecatedTag = "RESW0001"
	// CodeInvalidFormat flags a #Format directive that could not be resolved.
	CodeInvalidFormat = "RESW0002"
)

// Diagnostic is a single reported issue.
type Diagnostic struct {
	Code     string
	Severity Severity
	Message  string
	// Key is the localization the issue belongs to, if any.
	Key string
}

func (d Diagnostic) String() string {
	if d.Key != "" {
		return fmt.Sprintf("%s %s [%s]: %s", d.Severity, d.Code, d.Key, d.Message)
	}
	return fmt.Sprintf("%s %s: %s", d.Severity, d.Code, d.Message)
}

// Sink receives diagnostics.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(d Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// OrDiscard returns s, or Discard when s is nil.
func OrDiscard(s Sink) Sink {
	if s == nil {
		return Discard
	}
	return s
}

// Collector records diagnostics in report order. It is not safe for
// concurrent use; give each compilation its own Collector.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// HasErrors reports whether an error-severity diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	for _, d := range c.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Codes returns the recorded codes in order.
func (c *Collector) Codes() []string {
	codes := make([]string, 0, len(c.Diagnostics))
	for _, d := range c.Diagnostics {
		codes = append(codes, d.Code)
	}
	return codes
}
