package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/solatis/surfacegen/internal/core/db"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending tree library migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			database, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			ran, err := db.MigrateUp(ctx, database)
			if err != nil {
				return err
			}
			for _, id := range ran {
				a.logger.Info("applied migration", "migration", id)
			}
			if len(ran) == 0 {
				a.logger.Info("database is up to date")
			}
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			database, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			statuses, err := db.MigrateStatus(ctx, database)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MIGRATION\tSTATE\tAPPLIED AT")
			for _, s := range statuses {
				state, at := "pending", "-"
				if s.Applied {
					state = "applied"
					if s.AppliedAt != nil {
						at = s.AppliedAt.UTC().Format(time.RFC3339)
					}
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, state, at)
			}
			return tw.Flush()
		},
	}

	migrateCmd.AddCommand(statusCmd)
	return migrateCmd
}

func (a *app) openDB(ctx context.Context) (*sqlx.DB, error) {
	if a.cfg.Database.URL == "" {
		return nil, fmt.Errorf("--db-url required (or set database.url)")
	}
	database, err := db.Open(ctx, a.cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.logger.Debug("opened database", "driver", database.DriverName())
	return database, nil
}
