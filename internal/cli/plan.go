package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chromabatch/chromabatch/internal/render"
)

// NewPlanCmd creates the plan command, a dry run of the batch.
func NewPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show what a batch render would do without rendering",
		Args:  cobra.NoArgs,
		RunE:  runPlan,
	}
}

func runPlan(cmd *cobra.Command, _ []string) error {
	sc, err := loadScene(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reporter := render.MultiReporter(
		NewConsoleReporter(out),
		render.NewLogReporter(logger),
	)

	plan := render.NewPlan(&sc.Batch, sc, reporter)

	for _, b := range plan.Bindings {
		fmt.Fprintf(out, "  %s: %d color(s)\n", b.Material.Name, len(b.Colors))
	}

	count := plan.Count()
	fmt.Fprintf(out, "Would render %d image(s) across %d material(s).\n",
		count, len(plan.Bindings))
	if count > 0 {
		first := render.OutputName(sc.OutputPath(), 0, sc.Render.Extension())
		last := render.OutputName(sc.OutputPath(), count-1, sc.Render.Extension())
		fmt.Fprintf(out, "Output files: %s .. %s\n", first, last)
	}
	return nil
}
