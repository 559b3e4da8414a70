package render

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Severity classifies a diagnostic surfaced to the operator.
type Severity int

// Diagnostic severities, in increasing order.
const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the operator-facing severity label.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}
}

// Diagnostic is one (severity, message) pair.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// Reporter receives diagnostics during planning and execution. The core
// never inspects what a reporter does with them.
type Reporter interface {
	Report(sev Severity, msg string)
}

// Reportf formats and reports a diagnostic. A nil reporter drops it.
func Reportf(r Reporter, sev Severity, format string, args ...interface{}) {
	if r == nil {
		return
	}
	r.Report(sev, fmt.Sprintf(format, args...))
}

// LogReporter forwards diagnostics to a zerolog logger, mapping severities
// to log levels.
type LogReporter struct {
	logger zerolog.Logger
}

// NewLogReporter creates a reporter backed by logger.
func NewLogReporter(logger zerolog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report implements Reporter.
func (r *LogReporter) Report(sev Severity, msg string) {
	switch sev {
	case SeverityWarning:
		r.logger.Warn().Msg(msg)
	case SeverityError:
		r.logger.Error().Msg(msg)
	default:
		r.logger.Info().Msg(msg)
	}
}

// Recorder collects diagnostics in memory. Tests and the plan command use
// it to inspect what the filter and driver emitted.
type Recorder struct {
	Diagnostics []Diagnostic
}

// Report implements Reporter.
func (r *Recorder) Report(sev Severity, msg string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Severity: sev, Message: msg})
}

// Warnings returns only the recorded warning diagnostics.
func (r *Recorder) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// MultiReporter fans a diagnostic out to several reporters.
func MultiReporter(reporters ...Reporter) Reporter {
	return multiReporter(reporters)
}

type multiReporter []Reporter

func (m multiReporter) Report(sev Severity, msg string) {
	for _, r := range m {
		if r != nil {
			r.Report(sev, msg)
		}
	}
}
