package grpc_test

import (
	"bytes"
	"context"
	"log"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	daemon "github.com/andrescamacho/craftsolver-go/internal/adapters/grpc"
	"github.com/andrescamacho/craftsolver-go/internal/adapters/persistence"
	"github.com/andrescamacho/craftsolver-go/internal/application/common"
	"github.com/andrescamacho/craftsolver-go/internal/application/setup"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/database"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/presets"
	"github.com/andrescamacho/craftsolver-go/test/helpers"
)

type harness struct {
	client *daemon.DaemonClient
	logs   *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()

	repo := persistence.NewGormRecipeRepository(helpers.NewTestDB(t))
	_, err := database.SeedRecipes(ctx, repo)
	require.NoError(t, err)

	registry := setup.NewHandlerRegistry(repo, nil, 0)
	med, err := registry.CreateConfiguredMediator()
	require.NoError(t, err)
	presetSet, err := presets.Load("")
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	listener := bufconn.Listen(1 << 20)
	server := daemon.NewDaemonServerWithListener(
		daemon.NewCraftSolverService(med, presetSet, registry.Cache()),
		listener,
		daemon.ServerOptions{
			ShutdownTimeout: time.Second,
			Logger:          common.NewStdLoggerTo(log.New(logs, "", 0), "debug"),
		},
	)
	go func() { _ = server.Start() }()
	t.Cleanup(server.Stop)

	client, err := daemon.Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return &harness{client: client, logs: logs}
}

func smallStatus() crafting.Status {
	return crafting.NewStatus(
		crafting.Attributes{Level: 90, Craftsmanship: 200, Control: 200, CraftPoints: 40},
		crafting.Recipe{Level: 1, JobLevel: 1, Difficulty: 100, Quality: 1000, Durability: 40,
			ProgressDivider: 50, QualityDivider: 30, ProgressModifier: 100, QualityModifier: 100},
	)
}

func TestDaemon_BuildRecipe(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	resp, err := h.client.BuildRecipe(ctx, &daemon.BuildRecipeRequest{
		Level: 560, DifficultyFactor: 100, QualityFactor: 90, DurabilityFactor: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 6480, resp.Recipe.Quality)
	assert.Nil(t, resp.Row)

	resp, err = h.client.BuildRecipe(ctx, &daemon.BuildRecipeRequest{RecipeID: 1})
	require.NoError(t, err)
	require.NotNil(t, resp.Row)
	assert.Equal(t, "Maple Lumber", resp.Row.Name)
	assert.Equal(t, 30, resp.Recipe.Durability)

	_, err = h.client.BuildRecipe(ctx, &daemon.BuildRecipeRequest{RecipeID: 99999})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = h.client.BuildRecipe(ctx, &daemon.BuildRecipeRequest{
		Level: 2, DifficultyFactor: 100, QualityFactor: 100, DurabilityFactor: 100,
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDaemon_ListRecipes(t *testing.T) {
	h := newHarness(t)

	resp, err := h.client.ListRecipes(context.Background(), &daemon.ListRecipesRequest{Job: "CRP"})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Recipes)
	for i, row := range resp.Recipes {
		assert.Equal(t, "CRP", row.Job)
		if i > 0 {
			assert.Less(t, resp.Recipes[i-1].ID, row.ID)
		}
	}
}

func TestDaemon_BuildStatusAndSimulate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	base := smallStatus()

	built, err := h.client.BuildStatus(ctx, &daemon.BuildStatusRequest{
		Attributes: base.Attributes, Recipe: base.Recipe, InitialQuality: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, built.Status.Quality)

	sim, err := h.client.Simulate(ctx, &daemon.SimulateRequest{
		Status:  built.Status,
		Actions: []string{"byregots_blessing", "basic_synthesis", "basic synthesis"},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, sim.Status.Progress)
	require.Len(t, sim.Errors, 1)
	assert.Equal(t, 0, sim.Errors[0].Position)
	assert.Equal(t, crafting.ReasonRequireInnerQuiet, sim.Errors[0].Reason)

	_, err = h.client.Simulate(ctx, &daemon.SimulateRequest{Status: built.Status, Actions: []string{"basic_synthesys"}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), `did you mean "basic_synthesis"`)
}

func TestDaemon_SolverLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	s := smallStatus()

	_, err := h.client.ReadSolver(ctx, &daemon.ReadSolverRequest{Status: s})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "solver not exists", status.Convert(err).Message())

	created, err := h.client.CreateSolver(ctx, &daemon.CreateSolverRequest{
		Status:          s,
		Preset:          "minimal",
		ProgressActions: []string{"basic_synthesis"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.BuildID)
	assert.Equal(t, []crafting.Action{crafting.BasicSynthesis}, created.ProgressActions)
	assert.Equal(t, []crafting.Action{crafting.BasicTouch}, created.QualityActions)

	_, err = h.client.CreateSolver(ctx, &daemon.CreateSolverRequest{Status: s, Preset: "minimal"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
	assert.Equal(t, "solver already exists", status.Convert(err).Message())

	read, err := h.client.ReadSolver(ctx, &daemon.ReadSolverRequest{Status: s})
	require.NoError(t, err)
	assert.Equal(t, []crafting.Action{
		crafting.BasicTouch, crafting.BasicTouch, crafting.BasicSynthesis, crafting.BasicSynthesis,
	}, read.Actions)

	health, err := h.client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, health.Solvers)
	assert.Contains(t, h.logs.String(), "request_id=")
}

func TestDaemon_CreateSolverRejectsBadInput(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.client.CreateSolver(ctx, &daemon.CreateSolverRequest{Status: smallStatus(), Preset: "nope"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	bad := smallStatus()
	bad.CraftPoints = 999
	_, err = h.client.CreateSolver(ctx, &daemon.CreateSolverRequest{Status: bad, Preset: "minimal"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDaemon_ListPresets(t *testing.T) {
	h := newHarness(t)

	resp, err := h.client.ListPresets(context.Background())

	require.NoError(t, err)
	names := make([]string, 0, len(resp.Presets))
	for _, p := range resp.Presets {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"expert", "minimal", "standard"}, names)
}
