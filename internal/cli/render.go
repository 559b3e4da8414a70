package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chromabatch/chromabatch/internal/engine"
	"github.com/chromabatch/chromabatch/internal/render"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every color combination in the batch",
		Long: `Render walks the cartesian product of the candidate colors registered
for each eligible material binding and renders one image per
combination. Output files are named <filepath>_<index>.<format> with a
zero-padded 3-digit index; the scene's output path setting is restored
after every render.

Scenes with a render.command configured drive that external renderer;
otherwise the built-in swatch rasterizer is used.`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	sc, err := loadScene(cmd)
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")

	var confirm render.ConfirmFunc
	switch {
	case yes:
		// nil auto-accepts.
	case !isTerminal(os.Stdin):
		return fmt.Errorf("confirmation required but stdin is not a terminal; re-run with --yes")
	default:
		confirm = func(message string) bool {
			return Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), message)
		}
	}

	var eng render.Engine = engine.NewSwatch(sc)
	if len(sc.Render.Command) > 0 {
		eng = engine.NewExec(sc)
	}

	reporter := render.MultiReporter(
		NewConsoleReporter(cmd.OutOrStdout()),
		render.NewLogReporter(logger),
	)

	plan := render.NewPlan(&sc.Batch, sc, reporter)

	driver := &render.Driver{
		Engine:   eng,
		Paths:    sc,
		Ext:      sc.Render.Extension(),
		Confirm:  confirm,
		Reporter: reporter,
		OnProgress: func(p render.Progress) {
			logger.Debug().
				Int("done", p.Done).
				Int("total", p.Total).
				Float64("percent", p.PercentComplete()).
				Msg("render progress")
		},
	}

	result, err := driver.Run(cmd.Context(), plan)
	if err != nil {
		return err
	}
	if result.Declined {
		return nil
	}
	if result.Renders > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d image(s) written\n", result.RunID, result.Renders)
	}
	return nil
}
