package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chromabatch/chromabatch/internal/scene"
	"github.com/chromabatch/chromabatch/internal/settings"
)

// ErrAlreadyBound indicates a material that already has a binding.
var ErrAlreadyBound = errors.New("material is already bound")

// ErrNotBound indicates a material without a binding.
var ErrNotBound = errors.New("material is not bound")

// NewMaterialAddCmd creates the material add command.
func NewMaterialAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Bind a material to the batch with one default color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScene(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			if _, ok := sc.Batch.Binding(name); ok {
				return fmt.Errorf("%w: %q", ErrAlreadyBound, name)
			}
			if _, err := sc.Batch.AddMaterial(name); err != nil {
				return err
			}
			if _, err := sc.LookupMaterial(name); err != nil {
				// Bindings may reference materials added to the scene later;
				// unresolved ones are skipped at render time.
				fmt.Fprintf(cmd.OutOrStdout(),
					"warning: material %q is not in the scene yet and will be skipped until it is\n", name)
			}
			if err := sc.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "bound %q with 1 color\n", name)
			return nil
		},
	}
}

// NewMaterialRemoveCmd creates the material remove command.
func NewMaterialRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a material binding from the batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScene(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			idx := -1
			for i, b := range sc.Batch.Materials {
				if b.Material == name {
					idx = i
					break
				}
			}
			if idx < 0 {
				return fmt.Errorf("%w: %q", ErrNotBound, name)
			}
			if err := sc.Batch.RemoveMaterial(idx); err != nil {
				return err
			}
			if err := sc.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed binding %q\n", name)
			return nil
		},
	}
}

// NewMaterialListCmd creates the material list command.
func NewMaterialListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the material bindings in the batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := loadScene(cmd)
			if err != nil {
				return err
			}

			for _, b := range sc.Batch.Materials {
				marker := ""
				if _, err := sc.LookupMaterial(b.Material); err != nil {
					marker = "  (missing from scene)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d color(s)%s\n",
					b.Material, len(b.Colors), marker)
			}
			return nil
		},
	}
}

// bindingFor resolves the binding for name or returns ErrNotBound.
func bindingFor(sc *scene.Scene, name string) (*settings.MaterialBinding, error) {
	b, ok := sc.Batch.Binding(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotBound, name)
	}
	return b, nil
}
