package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeCommand(t *testing.T) {
	root := &cobra.Command{Use: "prefixid", Short: "root"}
	root.PersistentFlags().String("db-path", "", "Override database path")

	child := &cobra.Command{Use: "mint", Short: "mint ids"}
	child.Flags().IntP("count", "n", 1, "How many ids to mint")
	child.Flags().Bool("internal", false, "hidden knob")
	require.NoError(t, child.Flags().MarkHidden("internal"))

	root.AddCommand(child)
	root.AddCommand(newSchemaCmd(root))

	cs := describeCommand(root)
	assert.Equal(t, "prefixid", cs.Path)
	require.Len(t, cs.Children, 1, "schema must not describe itself")
	assert.Equal(t, "prefixid mint", cs.Children[0].Path)

	require.Len(t, cs.Children[0].Flags, 1, "hidden flags are omitted")
	f := cs.Children[0].Flags[0]
	assert.Equal(t, "count", f.Name)
	assert.Equal(t, "n", f.Shorthand)
	assert.Equal(t, "int", f.Type)
	assert.Equal(t, "1", f.Default)
}
