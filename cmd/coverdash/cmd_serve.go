package main

import (
	"fmt"

	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"coverdash/internal/logging"
	mcpserver "coverdash/internal/mcp"
	"coverdash/internal/store"
)

var serveFlags struct {
	dbPath string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing the coverage tools
(list_units, coverage_report, epic_pivot). Tools read from the snapshot DB;
fetch units beforehand with 'coverdash fetch'.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.dbPath, "db", store.DefaultDBPath, "Snapshot DB path")
}

func runServe(cmd *cobra.Command, _ []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	st, err := store.Open(serveFlags.dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	srv := mcpserver.NewServer(reg, st)
	logging.New("mcp").Info("starting coverdash MCP server over stdio")
	return srv.MCPServer.Run(cmd.Context(), &sdkmcp.StdioTransport{})
}
