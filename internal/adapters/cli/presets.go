package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	daemon "github.com/andrescamacho/craftsolver-go/internal/adapters/grpc"
)

// NewPresetsCommand creates the presets command with subcommands
func NewPresetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Inspect action presets known to the daemon",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List action presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDaemon(10*time.Second, func(ctx context.Context, client *daemon.DaemonClient) error {
				resp, err := client.ListPresets(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if jsonOutput {
					return printJSON(out, resp.Presets)
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tPROGRESS\tQUALITY\tDESCRIPTION")
				for _, p := range resp.Presets {
					fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", p.Name, len(p.Progress), len(p.Quality), p.Description)
					if verbose {
						fmt.Fprintf(w, "\t%s\n", joinActions(p.Progress))
						fmt.Fprintf(w, "\t\t%s\n", joinActions(p.Quality))
					}
				}
				return w.Flush()
			})
		},
	})

	return cmd
}
