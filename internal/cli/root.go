// Package cli implements the chromabatch command tree: scene management,
// batch plan inspection, the interactive editor, and the batch render
// command itself.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chromabatch/chromabatch/internal/logging"
	"github.com/chromabatch/chromabatch/internal/scene"
)

// logger is the process logger shared by every command. It is replaced in
// the root command's PersistentPreRunE once flags are parsed.
//
//nolint:gochecknoglobals // Cobra commands share one configured logger.
var logger = zerolog.Nop()

const rootCmdExample = `  # Create a starter scene file
  chromabatch scene init

  # Register a material and a couple of candidate colors
  chromabatch material add Paint
  chromabatch color add Paint "#ff0000"
  chromabatch color add Paint "#00ff00"

  # Inspect what a batch would render, then run it
  chromabatch plan
  chromabatch render

  # Unattended run (skips the confirmation prompt)
  chromabatch render --yes

  # Tweak bindings interactively
  chromabatch edit`

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd(version string) *cobra.Command {
	var closeLogs func() error

	rootCmd := &cobra.Command{
		Use:   "chromabatch",
		Short: "Batch-render a scene across material color combinations",
		Long: `chromabatch renders one image per combination of candidate colors
registered for a scene's materials. Bindings that no longer resolve
against the scene are skipped with a warning, and the scene's shared
output path is restored after every render.`,
		Example:       rootCmdExample,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			closeLogs, err = setupLogging(cmd)
			return err
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if closeLogs != nil {
				return closeLogs()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().StringP("scene", "f", "scene.yaml", "Scene file to operate on")

	rootCmd.AddCommand(
		NewRenderCmd(),
		NewPlanCmd(),
		NewEditCmd(),
		newMaterialCmd(),
		newColorCmd(),
		newSceneCmd(),
	)

	return rootCmd
}

// setupLogging builds the process logger from the persistent flags and
// attaches it to the command's context so downstream code can pick it up
// with logging.FromContext.
func setupLogging(cmd *cobra.Command) (func() error, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	logFile, _ := cmd.Flags().GetString("log-file")

	cfg := logging.Config{Level: "info", File: logFile}
	if debug {
		cfg.Level = "debug"
	}

	l, closer, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}

	logger = logging.ComponentLogger(l, "cli")
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return closer.Close, nil
}

// loadScene reads the scene named by the --scene flag.
func loadScene(cmd *cobra.Command) (*scene.Scene, error) {
	path, _ := cmd.Flags().GetString("scene")
	return scene.Load(path)
}

// isTerminal reports whether f is attached to an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// newMaterialCmd groups the material binding subcommands.
func newMaterialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "material",
		Short: "Manage material bindings in the batch settings",
	}
	cmd.AddCommand(NewMaterialAddCmd(), NewMaterialRemoveCmd(), NewMaterialListCmd())
	return cmd
}

// newColorCmd groups the candidate color subcommands.
func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Manage candidate colors on a material binding",
	}
	cmd.AddCommand(NewColorAddCmd(), NewColorRemoveCmd(), NewColorListCmd())
	return cmd
}

// newSceneCmd groups the scene file subcommands.
func newSceneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Manage the scene file",
	}
	cmd.AddCommand(NewSceneInitCmd())
	return cmd
}
