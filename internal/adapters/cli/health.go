package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	daemon "github.com/andrescamacho/craftsolver-go/internal/adapters/grpc"
)

// NewHealthCommand creates the health command
func NewHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check daemon health status",
		Long:  `Verify that the daemon is running and responsive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(5*time.Second, func(ctx context.Context, client *daemon.DaemonClient) error {
				health, err := client.Health(ctx)
				if err != nil {
					return fmt.Errorf("health check failed: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "✓ Daemon is healthy")
				fmt.Fprintf(out, "  Status:   %s\n", health.Status)
				fmt.Fprintf(out, "  Solvers:  %d\n", health.Solvers)
				fmt.Fprintf(out, "  Uptime:   %s\n", time.Duration(health.UptimeSeconds)*time.Second)
				return nil
			})
		},
	}

	return cmd
}
