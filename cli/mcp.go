package cli

import (
	"github.com/spf13/cobra"

	"github.com/droidctl/droidctl/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server over stdio",
	Long:  `Exposes device automation as Model Context Protocol tools over stdin/stdout, for use by MCP-capable clients.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcp.Serve(GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
