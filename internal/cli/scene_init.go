package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chromabatch/chromabatch/internal/scene"
)

// ErrSceneExists indicates the target scene file is already present.
var ErrSceneExists = errors.New("scene file already exists")

// NewSceneInitCmd creates the scene init command.
func NewSceneInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter scene file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("scene")
			force, _ := cmd.Flags().GetBool("force")

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrSceneExists, path)
			}

			if err := scene.New().SaveTo(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing scene file")
	return cmd
}
