package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	daemon "github.com/andrescamacho/craftsolver-go/internal/adapters/grpc"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/config"
)

// NewSolverCommand creates the solver command with subcommands
func NewSolverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solver",
		Short: "Build and query solvers",
		Long: `A solver is built once per crafter attributes and recipe, then answers
reads for any status of that craft.

Examples:
  craftsolver solver create --status-file status.json --preset standard
  craftsolver solver create --status-file status.json --progress basic_synthesis --quality basic_touch,innovation
  craftsolver solver read --status-file status.json`,
	}

	cmd.AddCommand(newSolverCreateCommand())
	cmd.AddCommand(newSolverReadCommand())

	return cmd
}

func newSolverCreateCommand() *cobra.Command {
	var (
		input    statusInput
		preset   string
		progress []string
		quality  []string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Build a solver for the status' attributes and recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStatus(input.file, input.path)
			if err != nil {
				return err
			}
			if preset == "" && len(progress) == 0 && len(quality) == 0 {
				preset = defaultPreset()
			}

			return withDaemon(timeout, func(ctx context.Context, client *daemon.DaemonClient) error {
				resp, err := client.CreateSolver(ctx, &daemon.CreateSolverRequest{
					Status:          st,
					Preset:          preset,
					ProgressActions: progress,
					QualityActions:  quality,
				})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if jsonOutput {
					return printJSON(out, resp)
				}
				fmt.Fprintln(out, "✓ Solver built")
				fmt.Fprintf(out, "  Build ID:   %s\n", resp.BuildID)
				fmt.Fprintf(out, "  Duration:   %s\n", time.Duration(resp.DurationMs)*time.Millisecond)
				fmt.Fprintf(out, "  Tables:     %d driver cells, %d solver cells\n", resp.DriverCells, resp.SolverCells)
				if verbose {
					fmt.Fprintf(out, "  Key:        %s\n", resp.Key)
					fmt.Fprintf(out, "  Progress:   %s\n", joinActions(resp.ProgressActions))
					fmt.Fprintf(out, "  Quality:    %s\n", joinActions(resp.QualityActions))
				}
				return nil
			})
		},
	}

	input.bind(cmd)
	cmd.Flags().StringVar(&preset, "preset", "", "Action preset (see 'craftsolver presets list')")
	cmd.Flags().StringSliceVar(&progress, "progress", nil, "Actions for the progress table (overrides the preset's)")
	cmd.Flags().StringSliceVar(&quality, "quality", nil, "Actions for the quality table (overrides the preset's)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "How long to wait for the build")

	return cmd
}

// defaultPreset returns the user's default preset, or "standard"
func defaultPreset() string {
	if handler, err := config.NewUserConfigHandler(); err == nil {
		if userCfg, err := handler.Load(); err == nil && userCfg.DefaultPreset != "" {
			return userCfg.DefaultPreset
		}
	}
	return "standard"
}

func newSolverReadCommand() *cobra.Command {
	var input statusInput

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read the recommended rotation from a status",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStatus(input.file, input.path)
			if err != nil {
				return err
			}

			return withDaemon(30*time.Second, func(ctx context.Context, client *daemon.DaemonClient) error {
				resp, err := client.ReadSolver(ctx, &daemon.ReadSolverRequest{Status: st})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if jsonOutput {
					return printJSON(out, resp)
				}
				fmt.Fprintf(out, "Rotation (%d steps): %s\n", len(resp.Actions), joinActions(resp.Actions))
				fmt.Fprintf(out, "Final quality: %d\n", resp.Quality)
				return nil
			})
		},
	}

	input.bind(cmd)
	return cmd
}
