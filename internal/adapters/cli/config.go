package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/config"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/presets"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage craftsolver configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (CS_* prefix)
2. Config file (config.yaml)
3. Default values

User preferences (default socket and preset) are stored in ~/.craftsolver/config.json

Examples:
  craftsolver config show
  craftsolver config set-socket /run/craftsolver.sock
  craftsolver config set-preset expert`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetSocketCommand())
	cmd.AddCommand(newConfigSetPresetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig("")
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			if jsonOutput {
				masked := *cfg
				masked.Database.Password = ""
				masked.Database.URL = maskPassword(masked.Database.URL)
				return printJSON(out, map[string]interface{}{"daemon": masked, "user": userCfg})
			}

			fmt.Fprintln(out, "Craftsolver Configuration")
			fmt.Fprintln(out, "=========================")

			fmt.Fprintln(out, "User Preferences:")
			fmt.Fprintf(out, "  Config file:      %s\n", userConfigHandler.GetConfigPath())
			fmt.Fprintf(out, "  Default Socket:   %s\n", orNotSet(userCfg.DefaultSocket))
			fmt.Fprintf(out, "  Default Preset:   %s\n", orNotSet(userCfg.DefaultPreset))

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			default:
				fmt.Fprintf(out, "  Host:             %s:%d\n", cfg.Database.Host, cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
			}

			fmt.Fprintln(out, "\nDaemon:")
			fmt.Fprintf(out, "  Socket Path:      %s\n", cfg.Daemon.SocketPath)
			fmt.Fprintf(out, "  PID File:         %s\n", cfg.Daemon.PIDFile)
			fmt.Fprintf(out, "  Shutdown Timeout: %s\n", cfg.Daemon.ShutdownTimeout)
			fmt.Fprintf(out, "  Rate Limit:       %d req/s (burst: %d)\n",
				cfg.Daemon.RateLimit.Requests, cfg.Daemon.RateLimit.Burst)

			fmt.Fprintln(out, "\nSolver:")
			fmt.Fprintf(out, "  Presets File:     %s\n", orNotSet(cfg.Solver.PresetsFile))
			fmt.Fprintf(out, "  Max Craft Points: %d\n", cfg.Solver.MaxCraftPoints)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)

			fmt.Fprintln(out, "\nMetrics:")
			if cfg.Metrics.Enabled {
				fmt.Fprintf(out, "  Endpoint:         http://%s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
			} else {
				fmt.Fprintln(out, "  Endpoint:         (disabled)")
			}

			return nil
		},
	}

	return cmd
}

func newConfigSetSocketCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-socket <path>",
		Short: "Set the default daemon socket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := handler.SetDefaultSocket(args[0]); err != nil {
				return fmt.Errorf("failed to set default socket: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default socket set to %s\n", args[0])
			return nil
		},
	}
}

func newConfigSetPresetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-preset <name>",
		Short: "Set the preset 'solver create' uses when no actions are given",
		Long: `Set the default action preset. The name is checked against the bundled
presets and the presets file named in the local configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault("")
			set, err := presets.Load(cfg.Solver.PresetsFile)
			if err != nil {
				return fmt.Errorf("failed to load presets: %w", err)
			}
			if _, err := set.Get(args[0]); err != nil {
				return fmt.Errorf("%w (known: %v)", err, set.Names())
			}

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := handler.SetDefaultPreset(args[0]); err != nil {
				return fmt.Errorf("failed to set default preset: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default preset set to %s\n", args[0])
			return nil
		},
	}
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}
