package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	daemon "github.com/andrescamacho/craftsolver-go/internal/adapters/grpc"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

// NewStatusCommand creates the status command with subcommands
func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Build crafting statuses",
	}

	cmd.AddCommand(newStatusBuildCommand())

	return cmd
}

func newStatusBuildCommand() *cobra.Command {
	var (
		recipe         recipeFlags
		attrs          crafting.Attributes
		initialQuality int
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the opening status of a craft",
		Long: `Build the opening status for a crafter and recipe. The status is printed
as JSON so it can be saved and passed to simulate and solver commands.

Example:
  craftsolver status build --recipe-id 1 --level 90 --craftsmanship 3000 --control 3000 --cp 600 > status.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipeReq, err := recipe.request()
			if err != nil {
				return err
			}

			return withDaemon(10*time.Second, func(ctx context.Context, client *daemon.DaemonClient) error {
				built, err := client.BuildRecipe(ctx, recipeReq)
				if err != nil {
					return err
				}

				resp, err := client.BuildStatus(ctx, &daemon.BuildStatusRequest{
					Attributes:     attrs,
					Recipe:         built.Recipe,
					InitialQuality: initialQuality,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp.Status)
			})
		},
	}

	recipe.bind(cmd)
	cmd.Flags().IntVar(&attrs.Level, "level", 90, "Crafter level")
	cmd.Flags().IntVar(&attrs.Craftsmanship, "craftsmanship", 0, "Crafter craftsmanship")
	cmd.Flags().IntVar(&attrs.Control, "control", 0, "Crafter control")
	cmd.Flags().IntVar(&attrs.CraftPoints, "cp", 0, "Crafter craft points")
	cmd.Flags().IntVar(&initialQuality, "initial-quality", 0, "Quality the craft starts with")
	_ = cmd.MarkFlagRequired("craftsmanship")
	_ = cmd.MarkFlagRequired("control")
	_ = cmd.MarkFlagRequired("cp")

	return cmd
}
