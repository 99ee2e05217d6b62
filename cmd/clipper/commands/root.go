// ABOUTME: Root command for the clipper CLI with global flags
// ABOUTME: Wires find, split, mcp, and version subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipper",
		Short: "Find spoken keywords in videos and split videos into clips",
		Long: `clipper transcribes video audio chunk by chunk and either reports
where keywords are spoken or cuts the video into topic-sized clips.

Sources can be local files or URLs (downloaded with yt-dlp).
Transcription uses the OpenAI audio API; set OPENAI_API_KEY or put it
in a .env file.

Examples:
  clipper find talk.mp4 --keywords budget,deadline
  clipper find https://www.youtube.com/watch?v=VIDEO_ID --keywords demo --begin 0:00 --end 10:00
  clipper split talk.mp4 --outdir ./clips`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format: text|json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewFindCmd())
	cmd.AddCommand(NewSplitCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
