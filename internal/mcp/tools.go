// ABOUTME: MCP tool definitions and registration for the clipper server
// ABOUTME: Exposes keyword search and clip splitting to LLM agents over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/config"
)

// RegisterTools registers both pipeline tools with the server
func RegisterTools(server *mcpserver.MCPServer, cfg *config.Config, log zerolog.Logger) *Handlers {
	handlers := &Handlers{cfg: cfg, log: log}

	// 1. find_keywords - locate spoken keywords and their timestamps
	server.AddTool(mcp.Tool{
		Name:        "find_keywords",
		Description: "Transcribe a video and report every occurrence of the given keywords with whole-video timestamps and surrounding text.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"video": map[string]interface{}{
					"type":        "string",
					"description": "Local path or URL of the video",
				},
				"keywords": map[string]interface{}{
					"type":        "string",
					"description": "Comma-separated keywords to search for",
				},
				"begin": map[string]interface{}{
					"type":        "string",
					"description": "Optional window start (H:M:S, M:S, or seconds)",
				},
				"end": map[string]interface{}{
					"type":        "string",
					"description": "Optional window end (H:M:S, M:S, or seconds)",
				},
			},
			Required: []string{"video", "keywords"},
		},
	}, handlers.FindKeywords)

	// 2. split_clips - cut a video into topic-sized clips
	server.AddTool(mcp.Tool{
		Name:        "split_clips",
		Description: "Transcribe a video, merge the speech into clip-sized spans, and extract one clip per span. Returns the clip manifest.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"video": map[string]interface{}{
					"type":        "string",
					"description": "Local path or URL of the video",
				},
				"output_dir": map[string]interface{}{
					"type":        "string",
					"description": "Directory for the per-run clip folder (default: current directory)",
				},
				"target_seconds": map[string]interface{}{
					"type":        "number",
					"description": "Target clip duration in seconds (default: 30)",
				},
			},
			Required: []string{"video"},
		},
	}, handlers.SplitClips)

	return handlers
}
