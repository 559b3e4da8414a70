package render

import "time"

// Progress tracks a running batch. The driver is single-threaded, so no
// locking is needed; callbacks receive value snapshots.
type Progress struct {
	// Total is the number of renders the batch will perform.
	Total int

	// Done is the number of renders completed so far.
	Done int

	// Start is when the batch began executing.
	Start time.Time
}

// ProgressFunc is invoked after each completed render.
type ProgressFunc func(Progress)

// NewProgress creates a tracker for a batch of total renders.
func NewProgress(total int) *Progress {
	return &Progress{Total: total, Start: time.Now()}
}

// Advance records one completed render.
func (p *Progress) Advance() {
	p.Done++
}

// PercentComplete returns the completion percentage (0-100).
func (p *Progress) PercentComplete() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total) * 100
}

// Elapsed returns the time spent since the batch started.
func (p *Progress) Elapsed() time.Duration {
	return time.Since(p.Start)
}

// EstimatedRemaining extrapolates the remaining duration from the average
// time per completed render. Returns 0 before the first render finishes.
func (p *Progress) EstimatedRemaining() time.Duration {
	if p.Done == 0 {
		return 0
	}
	avg := p.Elapsed() / time.Duration(p.Done)
	return avg * time.Duration(p.Total-p.Done)
}
