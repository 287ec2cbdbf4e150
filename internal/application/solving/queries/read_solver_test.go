package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftsolver-go/internal/application/solving"
	"github.com/andrescamacho/craftsolver-go/internal/application/solving/queries"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

func status() crafting.Status {
	return crafting.NewStatus(
		crafting.Attributes{Level: 90, Craftsmanship: 200, Control: 200, CraftPoints: 20},
		crafting.Recipe{Level: 1, JobLevel: 1, Difficulty: 100, Quality: 1000, Durability: 20,
			ProgressDivider: 50, QualityDivider: 30, ProgressModifier: 100, QualityModifier: 100},
	)
}

func TestReadSolverHandler(t *testing.T) {
	ctx := context.Background()
	cache := solving.NewCache()
	handler := queries.NewReadSolverHandler(cache)

	_, err := handler.Handle(ctx, &queries.ReadSolverQuery{Status: status()})
	var missing *solving.ErrSolverNotExists
	require.ErrorAs(t, err, &missing)

	_, err = cache.Create(ctx, status(), []crafting.Action{crafting.BasicSynthesis}, nil)
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, &queries.ReadSolverQuery{Status: status()})
	require.NoError(t, err)
	read := resp.(*queries.ReadSolverResponse)
	assert.Equal(t, []crafting.Action{crafting.BasicSynthesis, crafting.BasicSynthesis}, read.Actions)
	assert.Zero(t, read.Quality)
}
