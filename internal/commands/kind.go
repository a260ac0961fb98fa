package commands

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/prefixid/internal/models"
	"github.com/dotcommander/prefixid/internal/output"
	"github.com/dotcommander/prefixid/internal/store"
	"github.com/dotcommander/prefixid/pkg/prefixid"
)

// NewKindCmd creates the kind command with subcommands.
func NewKindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kind",
		Short: "Manage id kinds (prefix, alphabet, length, retry budget)",
		Long:  "A kind binds a record type to its id-generation parameters. Kinds are persisted in the store and loaded into the registry for reverse lookup.",
	}

	cmd.AddCommand(newKindAddCmd())
	cmd.AddCommand(newKindListCmd())
	cmd.AddCommand(newKindRmCmd())

	return cmd
}

func newKindAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Define or update a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			prefix, _ := cmd.Flags().GetString("prefix")
			noPrefix, _ := cmd.Flags().GetBool("no-prefix")
			alphabet, _ := cmd.Flags().GetString("alphabet")
			length, _ := cmd.Flags().GetInt("length")
			field, _ := cmd.Flags().GetString("field")

			kind := models.Kind{
				Name:     name,
				Alphabet: alphabet,
				Length:   length,
				Field:    field,
			}
			switch {
			case noPrefix:
				// Bare-token ids; kind stays out of the reverse-lookup registry.
			case cmd.Flags().Changed("prefix"):
				kind.Prefix = &prefix
			default:
				// Default the prefix from the kind name rather than silently
				// creating an unparseable kind.
				suggested := prefixid.SuggestPrefix(name)
				kind.Prefix = &suggested
			}
			if cmd.Flags().Changed("max-retries") {
				maxRetries, _ := cmd.Flags().GetInt("max-retries")
				kind.MaxRetries = &maxRetries
			}

			var stored *models.Kind
			if err := withDB(func(db *DB) error {
				// Validate through the library before persisting anything.
				if _, err := store.ConfigForKind(db, kind); err != nil {
					return err
				}
				s, err := store.UpsertKind(db, kind)
				if err != nil {
					return err
				}
				stored = s
				return nil
			}); err != nil {
				return err
			}

			return output.PrintSuccess(stored)
		},
	}

	cmd.Flags().String("prefix", "", "Id prefix (default: derived from the kind name)")
	cmd.Flags().Bool("no-prefix", false, "Generate bare tokens with no prefix (not reverse-resolvable)")
	cmd.Flags().String("alphabet", "", "Override the token alphabet for this kind")
	cmd.Flags().Int("length", 0, "Override the token length for this kind")
	cmd.Flags().Int("max-retries", 0, "Override the collision retry budget for this kind")
	cmd.Flags().String("field", "", "Record field the id is stored in (default: public_id)")

	return cmd
}

func newKindListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List defined kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			var kinds []models.Kind
			if err := withDB(func(db *DB) error {
				ks, err := store.ListKinds(db)
				if err != nil {
					return err
				}
				kinds = ks
				return nil
			}); err != nil {
				return err
			}

			type resp struct {
				Kinds []models.Kind `json:"kinds"`
				Count int           `json:"count"`
			}
			return output.PrintSuccess(resp{Kinds: kinds, Count: len(kinds)})
		},
	}
}

func newKindRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a kind definition (existing records keep their ids)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := withDB(func(db *DB) error {
				return store.DeleteKind(db, name)
			}); err != nil {
				return err
			}

			type resp struct {
				Removed string `json:"removed"`
			}
			return output.PrintSuccess(resp{Removed: name})
		},
	}
}
