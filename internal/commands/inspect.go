package commands

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/prefixid/internal/output"
	"github.com/dotcommander/prefixid/internal/store"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Parse an id into prefix, key and owning kind without fetching the record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fullID := args[0]

			type resp struct {
				Known  bool   `json:"known"`
				FullID string `json:"full_id"`
				Prefix string `json:"prefix,omitempty"`
				Key    string `json:"key,omitempty"`
				Kind   string `json:"kind,omitempty"`
				Field  string `json:"field,omitempty"`
			}

			result := resp{FullID: fullID}
			if err := withDB(func(db *DB) error {
				reg, err := store.BuildRegistry(db)
				if err != nil {
					return err
				}
				parsed, ok := reg.Parse(fullID)
				if !ok {
					// Unknown prefix or no separator: a normal outcome, not an error.
					return nil
				}
				result = resp{
					Known:  true,
					FullID: parsed.FullID,
					Prefix: parsed.Prefix,
					Key:    parsed.Key,
					Kind:   parsed.Owner.KindName(),
					Field:  parsed.Field,
				}
				return nil
			}); err != nil {
				return err
			}

			return output.PrintSuccess(result)
		},
	}
}
