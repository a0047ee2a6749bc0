package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds flags shared across all commands.
type GlobalFlags struct {
	ConfigPath string
}

var globalFlags GlobalFlags

var rootCmd = &cobra.Command{
	Use:   "siyuanmcp",
	Short: "MCP gateway for the SiYuan kernel API",
	Long:  "siyuanmcp exposes the SiYuan kernel's HTTP API as a fixed catalog of MCP tools over stdio.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.ConfigPath, "config", "siyuanmcp.toml", "config file path")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and returns an error; exit code is set by RunE.
func Execute() error {
	return rootCmd.Execute()
}
