package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/config"
)

const defaultSocketPath = "/tmp/craftsolver-daemon.sock"

var (
	// Global flags
	socketPath string
	verbose    bool
	jsonOutput bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "craftsolver",
		Short: "Craftsolver CLI - plan crafting rotations with the solver daemon",
		Long: `Craftsolver CLI builds recipes and crafting statuses, simulates action
sequences and drives the daemon's solver cache. The CLI talks to the daemon
over a Unix socket.

Examples:
  craftsolver recipe list --job CRP
  craftsolver status build --recipe-id 1 --craftsmanship 200 --control 200 --cp 300 > status.json
  craftsolver simulate --status-file status.json basic_synthesis basic_touch
  craftsolver solver create --status-file status.json --preset standard
  craftsolver solver read --status-file status.json`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", getDefaultSocketPath(),
		"Path to daemon Unix socket")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Print responses as JSON")

	// Add command groups
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewRecipeCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewSolverCommand())
	rootCmd.AddCommand(NewPresetsCommand())
	rootCmd.AddCommand(NewHealthCommand())

	return rootCmd
}

// getDefaultSocketPath returns the socket from the environment, then the user
// config, then the built-in default
func getDefaultSocketPath() string {
	if path := os.Getenv("CRAFTSOLVER_SOCKET"); path != "" {
		return path
	}
	if handler, err := config.NewUserConfigHandler(); err == nil {
		if userCfg, err := handler.Load(); err == nil && userCfg.DefaultSocket != "" {
			return userCfg.DefaultSocket
		}
	}
	return defaultSocketPath
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
