package commands

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/prefixid/internal/app"
	"github.com/dotcommander/prefixid/internal/output"
	"github.com/dotcommander/prefixid/internal/store"
)

// NewDBCmd creates the db command with subcommands.
func NewDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Inspect the backing store",
	}

	cmd.AddCommand(newDBStatusCmd())

	return cmd
}

func newDBStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the resolved database path and schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, source, err := app.ResolveDBPathDetailed()
			if err != nil {
				return cmdErr(err)
			}

			type resp struct {
				Path          string `json:"path"`
				Source        string `json:"source"`
				SchemaCurrent int64  `json:"schema_current"`
				SchemaLatest  int64  `json:"schema_latest"`
			}

			result := resp{Path: path, Source: source}
			if err := withDB(func(db *DB) error {
				current, latest, err := store.SchemaVersion(db)
				if err != nil {
					return err
				}
				result.SchemaCurrent = current
				result.SchemaLatest = latest
				return nil
			}); err != nil {
				return err
			}

			return output.PrintSuccess(result)
		},
	}
}
