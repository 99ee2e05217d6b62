// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Exposes keyword search and clip splitting to LLM agents via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/config"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/logging"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/mcp"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the clipper as an MCP (Model Context Protocol) server, enabling
LLM agents to search videos for keywords and split them into clips
via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an agent host)
  clipper mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "clipper": {
  #       "command": "clipper",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - transcription will not work")
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	// Stdio carries the protocol, so logs must stay on stderr/file.
	logger, closeLog, err := logging.New(logging.Options{
		Level:   level,
		LogFile: cfg.LogFile,
		Quiet:   quiet,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLog()

	server := mcpserver.NewMCPServer(
		"Video Clipper",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, cfg, logger)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Msg("MCP server starting on stdio")

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
