package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/solatis/surfacegen/internal/catalog"
	"github.com/solatis/surfacegen/internal/core/db"
	"github.com/solatis/surfacegen/internal/library"
	"github.com/solatis/surfacegen/internal/surface"
	"github.com/spf13/cobra"
)

func newStoreCmd(a *app) *cobra.Command {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the tree library",
	}

	storeCmd.AddCommand(
		newStoreSaveCmd(a),
		newStoreGetCmd(a),
		newStoreListCmd(a),
		newStoreDeleteCmd(a),
	)
	return storeCmd
}

// openStore opens the library and refuses to run against an unmigrated
// database.
func (a *app) openStore(ctx context.Context) (*library.Store, *sqlx.DB, error) {
	database, err := a.openDB(ctx)
	if err != nil {
		return nil, nil, err
	}

	statuses, err := db.MigrateStatus(ctx, database)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to check migrations: %w", err)
	}
	for _, s := range statuses {
		if !s.Applied {
			database.Close()
			return nil, nil, fmt.Errorf("migration %s not applied - run 'surfacegen migrate' first", s.ID)
		}
	}

	queries, err := db.LoadQueries(database)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to load queries: %w", err)
	}
	return library.NewStore(queries), database, nil
}

func newStoreSaveCmd(a *app) *cobra.Command {
	var (
		treeName string
		lint     bool
	)

	cmd := &cobra.Command{
		Use:   "save <name> [file]",
		Short: "Store a tree file or catalog tree under name",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				rule surface.SurfaceRule
				err  error
			)
			switch {
			case len(args) == 2 && treeName != "":
				return fmt.Errorf("give either a file or --tree, not both")
			case len(args) == 2:
				rule, err = readTreeFile(cmd, args[1])
			case treeName != "":
				rule, err = catalog.Build(treeName)
			default:
				return fmt.Errorf("a file or --tree is required")
			}
			if err != nil {
				return err
			}

			if lint {
				if err := surface.Validate(rule); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			store, database, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			entry, err := store.Save(ctx, args[0], rule)
			if err != nil {
				return err
			}
			a.logger.Info("saved tree", "name", entry.Name, "tree_id", entry.TreeID, "root_type", entry.RootType)
			fmt.Fprintln(cmd.OutOrStdout(), entry.TreeID)
			return nil
		},
	}

	cmd.Flags().StringVar(&treeName, "tree", "", "catalog tree to store instead of a file")
	cmd.Flags().BoolVar(&lint, "lint", true, "reject trees that fail validation")
	return cmd
}

func newStoreGetCmd(a *app) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print a stored tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := out.resolve(cmd, a.cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, database, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			rule, entry, err := store.Load(ctx, args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("loaded tree", "name", entry.Name, "checksum", entry.Checksum)
			return writeValue(cmd.OutOrStdout(), rule, settings)
		},
	}

	out.register(cmd)
	return cmd
}

func newStoreListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, database, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			entries, err := store.List(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tROOT\tUPDATED\tCHECKSUM")
			for _, e := range entries {
				sum := e.Checksum
				if len(sum) > 12 {
					sum = sum[:12]
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.RootType, e.UpdatedAt.UTC().Format(time.RFC3339), sum)
			}
			return tw.Flush()
		},
	}
}

func newStoreDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, database, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := store.Delete(ctx, args[0]); err != nil {
				return err
			}
			a.logger.Info("deleted tree", "name", args[0])
			return nil
		},
	}
}
