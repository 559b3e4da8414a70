package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chromabatch/chromabatch/internal/settings"
)

// NewColorAddCmd creates the color add command.
func NewColorAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add MATERIAL [HEX]",
		Short: "Add a candidate color to a material binding",
		Long: `Add appends a candidate color to the named material's binding. HEX is
"#rrggbb" or "#rrggbbaa"; when omitted the new entry defaults to white.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScene(cmd)
			if err != nil {
				return err
			}

			b, err := bindingFor(sc, args[0])
			if err != nil {
				return err
			}

			c := settings.White()
			if len(args) == 2 {
				if c, err = settings.ParseHex(args[1]); err != nil {
					return err
				}
			}

			idx := b.AddColor(c)
			if err := sc.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %s to %q at index %d\n",
				c.Hex(), b.Material, idx)
			return nil
		},
	}
}

// NewColorRemoveCmd creates the color remove command.
func NewColorRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove MATERIAL INDEX",
		Short: "Remove a candidate color from a material binding",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScene(cmd)
			if err != nil {
				return err
			}

			b, err := bindingFor(sc, args[0])
			if err != nil {
				return err
			}

			idx, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing index %q: %w", args[1], err)
			}
			if err := b.RemoveColor(idx); err != nil {
				return err
			}
			if err := sc.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed color %d from %q (%d remaining)\n",
				idx, b.Material, len(b.Colors))
			return nil
		},
	}
}

// NewColorListCmd creates the color list command.
func NewColorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list MATERIAL",
		Short: "List the candidate colors on a material binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScene(cmd)
			if err != nil {
				return err
			}

			b, err := bindingFor(sc, args[0])
			if err != nil {
				return err
			}

			for i, entry := range b.Colors {
				hex := entry.Color.Hex()
				swatch := lipgloss.NewStyle().
					Background(lipgloss.Color(hex[:7])).
					Render("  ")
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s %s\n", i, swatch, hex)
			}
			return nil
		},
	}
}
