package commands

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/prefixid/internal/output"
	"github.com/dotcommander/prefixid/internal/store"
	"github.com/dotcommander/prefixid/pkg/prefixid"
)

// NewMintCmd creates the mint command.
func NewMintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint <kind>",
		Short: "Generate fresh unique ids for a kind",
		Long: "Generates ids for a defined kind, consulting the store to avoid collisions. " +
			"--skip-existence-check skips the store query entirely; only safe because the " +
			"records table carries a unique index that will reject a colliding insert.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindName := args[0]
			count, _ := cmd.Flags().GetInt("count")
			skipCheck, _ := cmd.Flags().GetBool("skip-existence-check")
			if count < 1 {
				count = 1
			}

			var ids []string
			if err := withDB(func(db *DB) error {
				kind, err := store.GetKind(db, kindName)
				if err != nil {
					return err
				}
				cfg, err := store.ConfigForKind(db, *kind)
				if err != nil {
					return err
				}

				ids = make([]string, 0, count)
				for i := 0; i < count; i++ {
					id, err := prefixid.GenerateWith(cfg, prefixid.GenerateOptions{
						SkipExistenceCheck: skipCheck,
					})
					if err != nil {
						return err
					}
					ids = append(ids, id)
				}
				return nil
			}); err != nil {
				return err
			}

			type resp struct {
				Kind  string   `json:"kind"`
				IDs   []string `json:"ids"`
				Count int      `json:"count"`
			}
			return output.PrintSuccess(resp{Kind: kindName, IDs: ids, Count: len(ids)})
		},
	}

	cmd.Flags().IntP("count", "n", 1, "Number of ids to generate")
	cmd.Flags().Bool("skip-existence-check", false, "Skip store existence checks (bulk pre-generation)")

	return cmd
}
