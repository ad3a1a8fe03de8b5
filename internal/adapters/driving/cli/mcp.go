package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riklabs/rigveda-cli/internal/adapters/driving/mcp"
	"github.com/riklabs/rigveda-cli/internal/logger"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
	Long: `Exposes the corpus to AI assistants over the Model Context Protocol.

Use "mcp serve" to start the server.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Starts the MCP server over stdio, or over HTTP when --port is given.
The server offers search, verse lookup, browsing, and the reference
indexes as MCP tools and resources.`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVar(&mcpPort, "port", 0, "serve over HTTP on this port instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil || corpusService == nil {
		return errors.New("search and corpus services not configured")
	}

	ports := &mcp.Ports{
		Search:  searchService,
		Corpus:  corpusService,
		History: historyService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf("localhost:%d", mcpPort)
		logger.Info("MCP server listening on http://%s", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	logger.Debug("MCP server starting on stdio")
	return server.Run(cmd.Context())
}
