package render

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chromabatch/chromabatch/internal/logging"
)

// countPrinter formats render counts with thousand separators for the
// confirmation prompt and summaries.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var countPrinter = message.NewPrinter(language.English)

// Engine is the external render operation: a single blocking call that
// reads the current scene state (node values and the output-path setting)
// and, when writeStill is set, produces an image file at the current
// output path. It may fail with an engine-specific error.
type Engine interface {
	Render(ctx context.Context, writeStill bool) error
}

// OutputPaths is the shared mutable output-path setting. It is external
// state: other code may change it between combinations, which is why the
// driver re-captures it every iteration instead of caching it once.
type OutputPaths interface {
	OutputPath() string
	SetOutputPath(path string)
}

// ConfirmFunc presents the pre-render message to the operator and blocks
// for an accept/decline answer.
type ConfirmFunc func(message string) bool

// Driver executes one render per combination, mutating and restoring the
// shared scene state with the bookkeeping the batch contract requires.
type Driver struct {
	// Engine performs the actual renders.
	Engine Engine

	// Paths is the shared output-path setting.
	Paths OutputPaths

	// Ext is the image file extension appended to every output path,
	// including the leading dot.
	Ext string

	// Confirm gates execution. A nil Confirm auto-accepts (the CLI's
	// --yes path). Declining cancels the batch before any mutation.
	Confirm ConfirmFunc

	// Reporter receives operator-facing diagnostics. May be nil.
	Reporter Reporter

	// OnProgress, when set, is invoked after every completed render.
	OnProgress ProgressFunc
}

// Result summarizes a finished (or cancelled) batch.
type Result struct {
	// RunID identifies this batch run in logs and reports.
	RunID string

	// Renders is the number of images written.
	Renders int

	// Files lists the output paths rendered, in order.
	Files []string

	// Declined is set when the operator rejected the confirmation.
	Declined bool
}

// Run executes the plan. Per combination i (0-based): apply each chosen
// color to its material's RGB node (destructive, never restored — the
// next combination supersedes it), capture the live output path, point it
// at "<base>_<i:03d><ext>", render, and restore the captured path
// immediately after the engine returns, error or not. An engine failure
// aborts the remaining combinations; files already written stay on disk.
//
// The context is checked between combinations, so cancelling stops the
// batch at a consistent point: completed files remain and the output path
// is already restored.
func (d *Driver) Run(ctx context.Context, plan *Plan) (*Result, error) {
	if d.Engine == nil {
		return nil, ErrNilEngine
	}
	if d.Paths == nil {
		return nil, ErrNilOutput
	}

	result := &Result{RunID: ulid.Make().String()}
	log := logging.FromContext(ctx).With().Str("run_id", result.RunID).Logger()

	total := plan.Count()
	if total == 0 {
		// Empty batches succeed by doing nothing; no prompt, no renders.
		Reportf(d.Reporter, SeverityInfo, "0 renders planned; nothing to do")
		log.Info().Msg("empty batch, skipping")
		return result, nil
	}

	prompt := countPrinter.Sprintf("Render %d image(s) across %d material(s)?",
		total, len(plan.Bindings))
	if d.Confirm != nil && !d.Confirm(prompt) {
		Reportf(d.Reporter, SeverityInfo, "batch render cancelled")
		log.Info().Msg("operator declined confirmation")
		result.Declined = true
		return result, nil
	}

	log.Info().Int("renders", total).Int("materials", len(plan.Bindings)).Msg("batch render started")

	progress := NewProgress(total)
	combos := plan.Combinations()

	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Int("completed", result.Renders).Msg("batch cancelled between combinations")
			return result, fmt.Errorf("batch cancelled after %d render(s): %w", result.Renders, err)
		}

		combo, ok := combos.Next()
		if !ok {
			break
		}

		for i, b := range plan.Bindings {
			b.Node.SetValue(combo[i])
		}

		// Captured fresh each combination: external code may have moved
		// the output path since the last render.
		base := d.Paths.OutputPath()
		out := OutputName(base, index, d.Ext)

		d.Paths.SetOutputPath(out)
		Reportf(d.Reporter, SeverityInfo, "rendering to %s", out)
		err := d.Engine.Render(ctx, true)
		d.Paths.SetOutputPath(base)

		if err != nil {
			Reportf(d.Reporter, SeverityError, "render %03d failed: %v", index, err)
			log.Error().Err(err).Int("combination", index).Msg("engine failure, aborting batch")
			return result, fmt.Errorf("combination %03d: %w", index, err)
		}

		result.Renders++
		result.Files = append(result.Files, out)
		progress.Advance()
		if d.OnProgress != nil {
			d.OnProgress(*progress)
		}
	}

	Reportf(d.Reporter, SeverityInfo, "batch complete: %s image(s) written",
		countPrinter.Sprintf("%d", result.Renders))
	log.Info().Int("renders", result.Renders).Dur("elapsed", progress.Elapsed()).Msg("batch render finished")
	return result, nil
}

// OutputName builds the output path for combination index: the base path,
// an underscore, the zero-padded 3-digit index, and the image extension.
func OutputName(base string, index int, ext string) string {
	return fmt.Sprintf("%s_%03d%s", base, index, ext)
}
