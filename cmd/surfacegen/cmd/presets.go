package cmd

import (
	"fmt"

	"github.com/solatis/surfacegen/internal/render"
	"github.com/solatis/surfacegen/internal/surface"
	"github.com/spf13/cobra"
)

func newPresetsCmd(a *app) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List predefined conditions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, p := range surface.Presets() {
				if !show {
					fmt.Fprintln(w, p.Name)
					continue
				}
				data, err := render.JSON(p.Condition)
				if err != nil {
					return fmt.Errorf("preset %s: %w", p.Name, err)
				}
				fmt.Fprintf(w, "%s\t%s\n", p.Name, data)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print each preset's compact JSON")
	return cmd
}
