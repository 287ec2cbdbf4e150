package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	daemon "github.com/andrescamacho/craftsolver-go/internal/adapters/grpc"
)

// statusInput is the --status-file/--status-path flag pair
type statusInput struct {
	file string
	path string
}

func (s *statusInput) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.file, "status-file", "", "JSON file holding the status (- for stdin)")
	cmd.Flags().StringVar(&s.path, "status-path", "", "gjson path of the status inside the file (default: \"status\" member or whole document)")
	_ = cmd.MarkFlagRequired("status-file")
}

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var input statusInput

	cmd := &cobra.Command{
		Use:   "simulate [action...]",
		Short: "Replay actions from a status",
		Long: `Apply actions in order from a status. Actions that are not legal at
their position are skipped and reported.

Example:
  craftsolver simulate --status-file status.json muscle_memory veneration groundwork`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStatus(input.file, input.path)
			if err != nil {
				return err
			}

			return withDaemon(10*time.Second, func(ctx context.Context, client *daemon.DaemonClient) error {
				resp, err := client.Simulate(ctx, &daemon.SimulateRequest{Status: st, Actions: args})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if jsonOutput {
					return printJSON(out, resp)
				}
				s := resp.Status
				fmt.Fprintf(out, "Progress:    %d/%d\n", s.Progress, s.Recipe.Difficulty)
				fmt.Fprintf(out, "Quality:     %d/%d\n", s.Quality, s.Recipe.Quality)
				fmt.Fprintf(out, "Durability:  %d/%d\n", s.Durability, s.Recipe.Durability)
				fmt.Fprintf(out, "CP:          %d/%d\n", s.CraftPoints, s.Attributes.CraftPoints)
				fmt.Fprintf(out, "Steps:       %d\n", s.Step)
				for _, skipped := range resp.Errors {
					fmt.Fprintf(out, "  skipped #%d %s: %s\n", skipped.Position, args[skipped.Position], skipped.Reason)
				}
				if verbose {
					fmt.Fprintf(out, "Buffs:       %+v\n", s.Buffs)
				}
				return nil
			})
		},
	}

	input.bind(cmd)
	return cmd
}
