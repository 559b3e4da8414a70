package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chromabatch/chromabatch/internal/tui"
)

// ErrNoTerminal indicates an interactive command was run without a TTY.
var ErrNoTerminal = errors.New("interactive mode requires a terminal")

// NewEditCmd creates the edit command, launching the interactive binding
// editor.
func NewEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit material bindings and colors interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) {
				return ErrNoTerminal
			}

			sc, err := loadScene(cmd)
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.NewEditor(sc), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running editor: %w", err)
			}
			return nil
		},
	}
}
