package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the calbridge application
var rootCmd = &cobra.Command{
	Use:   "calbridge",
	Short: "Bridges tool-call requests to Google Calendar",
	Long: `calbridge exposes a small catalog of calendar tools (listing upcoming
events, creating events) behind a generic HTTP tool-call endpoint and
translates calls into Google Calendar API operations.

It can run as:
  - An HTTP tool server (default), e.g. for n8n or other automation
  - An MCP (Model Context Protocol) server over stdio for AI assistants

The token subcommand runs the interactive OAuth consent flow once and
prints the environment variables needed for unattended deployments.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "calbridge version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newVersionCmd())
}
