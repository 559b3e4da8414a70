package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/chromabatch/chromabatch/internal/render"
)

//nolint:gochecknoglobals // Shared lipgloss styles for diagnostic output.
var (
	styleInfoLabel    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleWarningLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleErrorLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// ConsoleReporter renders diagnostics for the operator with a colored
// severity label.
type ConsoleReporter struct {
	Out io.Writer
}

// NewConsoleReporter creates a reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{Out: out}
}

// Report implements render.Reporter.
func (r *ConsoleReporter) Report(sev render.Severity, msg string) {
	label := sev.String()
	switch sev {
	case render.SeverityWarning:
		label = styleWarningLabel.Render(label)
	case render.SeverityError:
		label = styleErrorLabel.Render(label)
	default:
		label = styleInfoLabel.Render(label)
	}
	fmt.Fprintf(r.Out, "%s %s\n", label, msg)
}
