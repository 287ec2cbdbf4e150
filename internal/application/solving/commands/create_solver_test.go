package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftsolver-go/internal/application/solving"
	"github.com/andrescamacho/craftsolver-go/internal/application/solving/commands"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/domain/shared"
)

func status() crafting.Status {
	return crafting.NewStatus(
		crafting.Attributes{Level: 90, Craftsmanship: 200, Control: 200, CraftPoints: 20},
		crafting.Recipe{Level: 1, JobLevel: 1, Difficulty: 100, Quality: 1000, Durability: 20,
			ProgressDivider: 50, QualityDivider: 30, ProgressModifier: 100, QualityModifier: 100},
	)
}

func TestCreateSolverHandler(t *testing.T) {
	cache := solving.NewCache()
	handler := commands.NewCreateSolverHandler(cache)

	resp, err := handler.Handle(context.Background(), &commands.CreateSolverCommand{
		Status:          status(),
		ProgressActions: []crafting.Action{crafting.BasicSynthesis},
		QualityActions:  []crafting.Action{crafting.BasicTouch},
	})

	require.NoError(t, err)
	created := resp.(*commands.CreateSolverResponse)
	assert.NotEmpty(t, created.Build.ID.String())
	assert.Equal(t, 1, cache.Len())
}

func TestCreateSolverHandler_Validation(t *testing.T) {
	cache := solving.NewCache()
	handler := commands.NewCreateSolverHandler(cache)

	bad := status()
	bad.Durability = 99
	_, err := handler.Handle(context.Background(), &commands.CreateSolverCommand{Status: bad})
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = handler.Handle(context.Background(), &commands.CreateSolverCommand{
		Status:         status(),
		QualityActions: []crafting.Action{crafting.Action(-1)},
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "QualityActions[0]", verr.Field)
	assert.Zero(t, cache.Len())
}

func TestCreateSolverHandler_WrongRequestType(t *testing.T) {
	handler := commands.NewCreateSolverHandler(solving.NewCache())

	_, err := handler.Handle(context.Background(), struct{}{})

	assert.ErrorContains(t, err, "invalid request type")
}

func TestCreateSolverHandler_MaxCraftPoints(t *testing.T) {
	cache := solving.NewCache()
	handler := commands.NewCreateSolverHandler(cache, commands.WithMaxCraftPoints(10))

	_, err := handler.Handle(context.Background(), &commands.CreateSolverCommand{Status: status()})

	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Status.Attributes.CraftPoints", verr.Field)
	assert.Zero(t, cache.Len())
}

func TestCreateSolverHandler_RejectsOpeners(t *testing.T) {
	cache := solving.NewCache()
	handler := commands.NewCreateSolverHandler(cache)

	_, err := handler.Handle(context.Background(), &commands.CreateSolverCommand{
		Status:          status(),
		ProgressActions: []crafting.Action{crafting.BasicSynthesis, crafting.MuscleMemory},
		QualityActions:  []crafting.Action{crafting.BasicTouch},
	})
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ProgressActions[1]", verr.Field)
	assert.Contains(t, verr.Message, "first step")

	_, err = handler.Handle(context.Background(), &commands.CreateSolverCommand{
		Status:          status(),
		ProgressActions: []crafting.Action{crafting.BasicSynthesis},
		QualityActions:  []crafting.Action{crafting.Reflect, crafting.BasicTouch},
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "QualityActions[0]", verr.Field)
	assert.Zero(t, cache.Len())
}
