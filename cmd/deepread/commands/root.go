// ABOUTME: Root CLI command with global flags and subcommand wiring
// ABOUTME: Entry point for all deepread subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
██████╗ ███████╗███████╗██████╗ ██████╗ ███████╗ █████╗ ██████╗
██╔══██╗██╔════╝██╔════╝██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔══██╗
██║  ██║█████╗  █████╗  ██████╔╝██████╔╝█████╗  ███████║██║  ██║
██║  ██║██╔══╝  ██╔══╝  ██╔═══╝ ██╔══██╗██╔══╝  ██╔══██║██║  ██║
██████╔╝███████╗███████╗██║     ██║  ██║███████╗██║  ██║██████╔╝
╚═════╝ ╚══════╝╚══════╝╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═════╝
`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deepread",
		Short: "Personal book knowledge base with semantic search",
		Long: banner + `
DeepRead stores knowledge cards extracted from book analyses, embeds
them into a vector space, and serves semantic search, cross-book
relationship discovery, and Markdown export.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewRelatedCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewGraphCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
