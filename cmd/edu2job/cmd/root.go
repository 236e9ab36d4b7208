package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	host    string
	port    int
	version = "dev" // Set by build
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "edu2job",
	Short: "Edu2Job - career prediction client",
	Long: `Edu2Job serves a local web interface for the Edu2Job career
prediction service. It keeps your session on disk, talks to the
remote backend API, and exposes the dashboard, profile, prediction,
support, and admin pages in your browser.`,
	Version: version,
	// Default to serve command when no subcommand is specified
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "edu2job.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&host, "host", "127.0.0.1", "Server host address")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 4280, "Server port number")
}

// loadConfig loads the configuration file, falling back to the
// built-in defaults when the file does not exist.
func loadConfig() (*configResult, error) {
	return resolveConfig(cfgFile)
}
