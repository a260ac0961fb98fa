package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dotcommander/prefixid/internal/output"
)

type flagSchema struct {
	Name      string `json:"name"`
	Shorthand string `json:"shorthand,omitempty"`
	Type      string `json:"type"`
	Default   string `json:"default,omitempty"`
	Usage     string `json:"usage"`
}

type commandSchema struct {
	Path     string          `json:"path"`
	Short    string          `json:"short"`
	Flags    []flagSchema    `json:"flags,omitempty"`
	Children []commandSchema `json:"children,omitempty"`
}

// newSchemaCmd describes the command tree as JSON, so scripts and agents can
// discover the surface without scraping --help text.
func newSchemaCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Describe the CLI commands and flags as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.PrintSuccess(describeCommand(root))
		},
	}
}

func describeCommand(cmd *cobra.Command) commandSchema {
	cs := commandSchema{
		Path:  cmd.CommandPath(),
		Short: cmd.Short,
	}

	collect := func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		cs.Flags = append(cs.Flags, flagSchema{
			Name:      f.Name,
			Shorthand: f.Shorthand,
			Type:      f.Value.Type(),
			Default:   f.DefValue,
			Usage:     f.Usage,
		})
	}
	cmd.LocalFlags().VisitAll(collect)

	for _, child := range cmd.Commands() {
		if child.Hidden || child.Name() == "schema" {
			continue
		}
		cs.Children = append(cs.Children, describeCommand(child))
	}
	return cs
}
