package cmd

import (
	"fmt"

	"github.com/solatis/surfacegen/internal/catalog"
	"github.com/spf13/cobra"
)

func newPrintCmd(a *app) *cobra.Command {
	var (
		out  outputFlags
		list bool
	)

	cmd := &cobra.Command{
		Use:   "print [tree]",
		Short: "Print a catalog tree",
		Long:  fmt.Sprintf("Print a named catalog tree to stdout. Defaults to %s.", catalog.Default),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range catalog.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			name := catalog.Default
			if len(args) == 1 {
				name = args[0]
			}
			tree, err := catalog.Build(name)
			if err != nil {
				return err
			}

			settings, err := out.resolve(cmd, a.cfg)
			if err != nil {
				return err
			}
			a.logger.Debug("printing tree", "tree", name, "format", settings.Format, "indent", settings.Indent)
			return writeValue(cmd.OutOrStdout(), tree, settings)
		},
	}

	out.register(cmd)
	cmd.Flags().BoolVar(&list, "list", false, "list catalog tree names")
	return cmd
}
