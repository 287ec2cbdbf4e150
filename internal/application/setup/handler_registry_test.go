package setup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	craftingQueries "github.com/andrescamacho/craftsolver-go/internal/application/crafting/queries"
	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
	solvingCommands "github.com/andrescamacho/craftsolver-go/internal/application/solving/commands"
	solvingQueries "github.com/andrescamacho/craftsolver-go/internal/application/solving/queries"
	"github.com/andrescamacho/craftsolver-go/internal/application/setup"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

func TestCreateConfiguredMediator_SharesCache(t *testing.T) {
	registry := setup.NewHandlerRegistry(nil, nil, 0)
	med, err := registry.CreateConfiguredMediator()
	require.NoError(t, err)
	ctx := context.Background()

	resp, err := med.Send(ctx, &craftingQueries.BuildStatusQuery{
		Attributes: crafting.Attributes{Level: 90, Craftsmanship: 200, Control: 200, CraftPoints: 20},
		Recipe: crafting.Recipe{Level: 1, JobLevel: 1, Difficulty: 100, Quality: 1000, Durability: 20,
			ProgressDivider: 50, QualityDivider: 30, ProgressModifier: 100, QualityModifier: 100},
	})
	require.NoError(t, err)
	status := resp.(*craftingQueries.BuildStatusResponse).Status

	_, err = med.Send(ctx, &solvingCommands.CreateSolverCommand{
		Status:          status,
		ProgressActions: []crafting.Action{crafting.BasicSynthesis},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Cache().Len())

	resp, err = med.Send(ctx, &solvingQueries.ReadSolverQuery{Status: status})
	require.NoError(t, err)
	assert.Equal(t, []crafting.Action{crafting.BasicSynthesis, crafting.BasicSynthesis},
		resp.(*solvingQueries.ReadSolverResponse).Actions)
}

func TestCreateConfiguredMediator_WithoutRepositorySkipsCatalog(t *testing.T) {
	med, err := setup.NewHandlerRegistry(nil, nil, 0).CreateConfiguredMediator()
	require.NoError(t, err)

	_, err = med.Send(context.Background(), &craftingQueries.ListRecipesQuery{})

	assert.ErrorContains(t, err, "no handler registered")
}

func TestCreateConfiguredMediator_AppliesMiddleware(t *testing.T) {
	var seen []string
	mw := func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		seen = append(seen, "mw")
		return next(ctx, request)
	}
	med, err := setup.NewHandlerRegistry(nil, nil, 0).CreateConfiguredMediator(mw)
	require.NoError(t, err)

	_, err = med.Send(context.Background(), &craftingQueries.BuildRecipeQuery{
		Level: 1, DifficultyFactor: 100, QualityFactor: 100, DurabilityFactor: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"mw"}, seen)
}
