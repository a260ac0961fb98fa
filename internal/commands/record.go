package commands

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/prefixid/internal/models"
	"github.com/dotcommander/prefixid/internal/output"
	"github.com/dotcommander/prefixid/internal/store"
	"github.com/dotcommander/prefixid/pkg/prefixid"
)

// NewRecordCmd creates the record command with subcommands.
func NewRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Create and fetch records through the id lifecycle",
	}

	cmd.AddCommand(newRecordCreateCmd())
	cmd.AddCommand(newRecordGetCmd())
	cmd.AddCommand(newRecordListCmd())

	return cmd
}

func newRecordCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <kind>",
		Short: "Create a record, assigning an id unless one is supplied",
		RunE: func(cmd *cobra.Command, args []string) error {
			kindName := args[0]
			name, _ := cmd.Flags().GetString("name")
			suppliedID, _ := cmd.Flags().GetString("id")

			var created *models.Record
			if err := withDB(func(db *DB) error {
				kind, err := store.GetKind(db, kindName)
				if err != nil {
					return err
				}
				cfg, err := store.ConfigForKind(db, *kind)
				if err != nil {
					return err
				}

				// The before-first-persistence hook: populate the id field
				// only when the caller left it empty.
				rec := &models.Record{Kind: kindName, Name: name, PublicID: suppliedID}
				if _, err := prefixid.AssignID(rec, cfg); err != nil {
					return err
				}

				stored, err := store.InsertRecord(db, kindName, rec.PublicID, rec.Name)
				if err != nil {
					return err
				}
				created = stored
				return nil
			}); err != nil {
				return err
			}

			return output.PrintSuccess(created)
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().String("name", "", "Human-readable record name")
	cmd.Flags().String("id", "", "Caller-supplied id (skips generation, still unique-checked on insert)")

	return cmd
}

func newRecordGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Reverse-resolve an id to its record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fullID := args[0]

			type resp struct {
				Found  bool           `json:"found"`
				Record *models.Record `json:"record,omitempty"`
			}

			var result resp
			if err := withDB(func(db *DB) error {
				reg, err := store.BuildRegistry(db)
				if err != nil {
					return err
				}
				rec, found, err := reg.Locate(fullID)
				if err != nil {
					return err
				}
				if found {
					result = resp{Found: true, Record: rec.(*models.Record)}
				}
				return nil
			}); err != nil {
				return err
			}

			return output.PrintSuccess(result)
		},
	}
}

func newRecordListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List records of a kind, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindName := args[0]
			limit, _ := cmd.Flags().GetInt("limit")

			var records []models.Record
			if err := withDB(func(db *DB) error {
				rs, err := store.ListRecords(db, kindName, limit)
				if err != nil {
					return err
				}
				records = rs
				return nil
			}); err != nil {
				return err
			}

			type resp struct {
				Kind    string          `json:"kind"`
				Records []models.Record `json:"records"`
				Count   int             `json:"count"`
			}
			return output.PrintSuccess(resp{Kind: kindName, Records: records, Count: len(records)})
		},
	}

	cmd.Flags().Int("limit", 50, "Maximum records to return (0 = no cap)")

	return cmd
}
