package cmd

import (
	"fmt"

	"github.com/solatis/surfacegen/internal/surface"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Decode and lint a tree file (JSON or YAML, - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := readTreeFile(cmd, args[0])
			if err != nil {
				return err
			}

			if err := surface.Validate(rule); err != nil {
				issues, ok := surface.AsIssues(err)
				if !ok {
					return err
				}
				for _, issue := range issues {
					fmt.Fprintln(cmd.OutOrStdout(), issue.Error())
				}
				a.logger.Debug("lint failed", "file", args[0], "issues", len(issues))
				return fmt.Errorf("%s: %d issue(s)", args[0], len(issues))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s rule\n", rule.RuleType())
			return nil
		},
	}
}
