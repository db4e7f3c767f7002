package commands

import (
	"github.com/spf13/cobra"
)

var (
	// envFile is an extra dotenv file fed into config loading.
	envFile string
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "farmartctl",
	Short: "Farmart backend operations CLI",
	Long: `farmartctl manages the Farmart backend database: applying and rolling
back migrations, wiping the schema during development, and loading the
test fixtures.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags.
	rootCmd.PersistentFlags().StringVar(
		&envFile, "env-file", "",
		"Path to a dotenv file (default: .env in the working directory)",
	)

	// Add subcommands.
	rootCmd.AddCommand(dbCmd)
}
