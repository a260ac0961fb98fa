package commands

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/prefixid/internal/output"
	"github.com/dotcommander/prefixid/pkg/prefixid"
)

// NewSettingsCmd creates the settings command with subcommands.
func NewSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or reset the effective generation settings",
	}

	cmd.AddCommand(newSettingsShowCmd())
	cmd.AddCommand(newSettingsResetCmd())

	return cmd
}

type settingsResp struct {
	Separator    string `json:"separator"`
	Alphabet     string `json:"alphabet"`
	Length       int    `json:"length"`
	MaxRetries   int    `json:"max_retries"`
	DefaultField string `json:"default_field,omitempty"`
}

func settingsToResp(s prefixid.Settings) settingsResp {
	return settingsResp{
		Separator:    s.Separator,
		Alphabet:     s.Alphabet,
		Length:       s.Length,
		MaxRetries:   s.MaxRetries,
		DefaultField: s.DefaultField,
	}
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective settings (built-ins + config.yaml overrides)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.PrintSuccess(settingsToResp(prefixid.Global()))
		},
	}
}

func newSettingsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset this process to the documented built-in defaults",
		Long:  "Resets the in-process settings only; config.yaml is left untouched and will be re-applied on the next run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefixid.ResetToDefaults()
			return output.PrintSuccess(settingsToResp(prefixid.Global()))
		},
	}
}
