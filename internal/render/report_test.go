package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "INFO", SeverityInfo.String())
	assert.Equal(t, "WARNING", SeverityWarning.String())
	assert.Equal(t, "ERROR", SeverityError.String())
}

func TestRecorderAndMulti(t *testing.T) {
	var a, b Recorder
	multi := MultiReporter(&a, nil, &b)

	Reportf(multi, SeverityWarning, "material %q not found", "Ghost")
	Reportf(multi, SeverityInfo, "planning done")

	assert.Equal(t, a.Diagnostics, b.Diagnostics)
	assert.Len(t, a.Warnings(), 1)
	assert.Equal(t, `material "Ghost" not found`, a.Warnings()[0].Message)

	// A nil reporter silently drops diagnostics.
	assert.NotPanics(t, func() { Reportf(nil, SeverityError, "dropped") })
}

func TestProgress(t *testing.T) {
	p := NewProgress(4)
	assert.Equal(t, 0.0, p.PercentComplete())
	assert.Equal(t, time.Duration(0), p.EstimatedRemaining())

	p.Advance()
	p.Advance()
	assert.Equal(t, 50.0, p.PercentComplete())
	assert.GreaterOrEqual(t, p.EstimatedRemaining(), time.Duration(0))

	zero := NewProgress(0)
	assert.Equal(t, 0.0, zero.PercentComplete())
}
