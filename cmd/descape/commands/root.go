// Package commands implements the CLI commands for descape.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "descape",
	Short: "Reverse backslash-escaping in exported markdown",
	Long: `Descape detects and reverses the backslash-escaping that export
pipelines (Google Docs "Download as Markdown" and similar) add to
markdown syntax, turning \# back into #, \- back into -, and so on.

Files that show no sign of escaping are left byte-for-byte untouched,
so it is safe to run over a whole directory tree.

Examples:
  # Clean a single file in place
  descape clean notes.md

  # Preview what a directory run would change
  descape clean --dry-run docs/

  # Pipe through stdin/stdout
  cat export.md | descape clean -

  # Run the local web form
  descape serve`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.descape.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".descape")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("DESCAPE")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
