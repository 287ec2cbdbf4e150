package grpc

import (
	"context"
	"fmt"
	"time"

	craftingQuery "github.com/andrescamacho/craftsolver-go/internal/application/crafting/queries"
	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
	solvingCmd "github.com/andrescamacho/craftsolver-go/internal/application/solving/commands"
	solvingQuery "github.com/andrescamacho/craftsolver-go/internal/application/solving/queries"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/presets"
)

// SolverCounter reports how many solvers are built
type SolverCounter interface {
	Len() int
}

// craftSolverService bridges gRPC requests to mediator handlers
type craftSolverService struct {
	mediator mediator.Mediator
	presets  *presets.Set
	solvers  SolverCounter
	started  time.Time
}

// NewCraftSolverService creates the service implementation
func NewCraftSolverService(med mediator.Mediator, presetSet *presets.Set, solvers SolverCounter) CraftSolverServer {
	return &craftSolverService{
		mediator: med,
		presets:  presetSet,
		solvers:  solvers,
		started:  time.Now(),
	}
}

// send dispatches a request and asserts the response type
func send[T any](ctx context.Context, med mediator.Mediator, request mediator.Request) (*T, error) {
	response, err := med.Send(ctx, request)
	if err != nil {
		return nil, toStatus(err)
	}
	typed, ok := response.(*T)
	if !ok {
		return nil, toStatus(fmt.Errorf("unexpected response type %T", response))
	}
	return typed, nil
}

func (s *craftSolverService) BuildRecipe(ctx context.Context, req *BuildRecipeRequest) (*BuildRecipeResponse, error) {
	if req.RecipeID != 0 {
		resp, err := send[craftingQuery.GetRecipeResponse](ctx, s.mediator, &craftingQuery.GetRecipeQuery{ID: req.RecipeID})
		if err != nil {
			return nil, err
		}
		row := resp.Row
		return &BuildRecipeResponse{Recipe: resp.Recipe, Row: &row}, nil
	}

	resp, err := send[craftingQuery.BuildRecipeResponse](ctx, s.mediator, &craftingQuery.BuildRecipeQuery{
		Level:            req.Level,
		DifficultyFactor: req.DifficultyFactor,
		QualityFactor:    req.QualityFactor,
		DurabilityFactor: req.DurabilityFactor,
	})
	if err != nil {
		return nil, err
	}
	return &BuildRecipeResponse{Recipe: resp.Recipe}, nil
}

func (s *craftSolverService) BuildStatus(ctx context.Context, req *BuildStatusRequest) (*BuildStatusResponse, error) {
	resp, err := send[craftingQuery.BuildStatusResponse](ctx, s.mediator, &craftingQuery.BuildStatusQuery{
		Attributes:     req.Attributes,
		Recipe:         req.Recipe,
		InitialQuality: req.InitialQuality,
	})
	if err != nil {
		return nil, err
	}
	return &BuildStatusResponse{Status: resp.Status}, nil
}

func (s *craftSolverService) Simulate(ctx context.Context, req *SimulateRequest) (*SimulateResponse, error) {
	actions, err := crafting.ParseActions(req.Actions)
	if err != nil {
		return nil, toStatus(err)
	}
	resp, err := send[craftingQuery.SimulateResponse](ctx, s.mediator, &craftingQuery.SimulateQuery{
		Status:  req.Status,
		Actions: actions,
	})
	if err != nil {
		return nil, err
	}
	return &SimulateResponse{Status: resp.Status, Errors: resp.Skipped}, nil
}

func (s *craftSolverService) ListRecipes(ctx context.Context, req *ListRecipesRequest) (*ListRecipesResponse, error) {
	resp, err := send[craftingQuery.ListRecipesResponse](ctx, s.mediator, &craftingQuery.ListRecipesQuery{Job: req.Job})
	if err != nil {
		return nil, err
	}
	return &ListRecipesResponse{Recipes: resp.Recipes}, nil
}

func (s *craftSolverService) CreateSolver(ctx context.Context, req *CreateSolverRequest) (*CreateSolverResponse, error) {
	progress, quality, err := s.resolveActions(req)
	if err != nil {
		return nil, toStatus(err)
	}

	resp, err := send[solvingCmd.CreateSolverResponse](ctx, s.mediator, &solvingCmd.CreateSolverCommand{
		Status:          req.Status,
		ProgressActions: progress,
		QualityActions:  quality,
	})
	if err != nil {
		return nil, err
	}
	build := resp.Build
	return &CreateSolverResponse{
		BuildID:         build.ID.String(),
		Key:             build.Key.String(),
		BuiltAt:         build.BuiltAt,
		DurationMs:      build.Duration.Milliseconds(),
		DriverCells:     build.Stats.DriverCells,
		SolverCells:     build.Stats.SolverCells,
		ProgressActions: progress,
		QualityActions:  quality,
	}, nil
}

// resolveActions starts from the named preset, if any, and replaces each half
// that the request spells out explicitly.
func (s *craftSolverService) resolveActions(req *CreateSolverRequest) ([]crafting.Action, []crafting.Action, error) {
	var progress, quality []crafting.Action
	if req.Preset != "" {
		if s.presets == nil {
			return nil, nil, &presets.ErrUnknownPreset{Name: req.Preset}
		}
		p, err := s.presets.Get(req.Preset)
		if err != nil {
			return nil, nil, err
		}
		progress, quality = p.Progress, p.Quality
	}
	if len(req.ProgressActions) > 0 {
		parsed, err := crafting.ParseActions(req.ProgressActions)
		if err != nil {
			return nil, nil, err
		}
		progress = parsed
	}
	if len(req.QualityActions) > 0 {
		parsed, err := crafting.ParseActions(req.QualityActions)
		if err != nil {
			return nil, nil, err
		}
		quality = parsed
	}
	return progress, quality, nil
}

func (s *craftSolverService) ReadSolver(ctx context.Context, req *ReadSolverRequest) (*ReadSolverResponse, error) {
	resp, err := send[solvingQuery.ReadSolverResponse](ctx, s.mediator, &solvingQuery.ReadSolverQuery{Status: req.Status})
	if err != nil {
		return nil, err
	}
	return &ReadSolverResponse{Actions: resp.Actions, Quality: resp.Quality}, nil
}

func (s *craftSolverService) ListPresets(ctx context.Context, req *ListPresetsRequest) (*ListPresetsResponse, error) {
	out := &ListPresetsResponse{Presets: []PresetInfo{}}
	if s.presets == nil {
		return out, nil
	}
	for _, p := range s.presets.All() {
		out.Presets = append(out.Presets, PresetInfo{
			Name:        p.Name,
			Description: p.Description,
			Progress:    p.Progress,
			Quality:     p.Quality,
		})
	}
	return out, nil
}

func (s *craftSolverService) Health(ctx context.Context, req *HealthRequest) (*HealthResponse, error) {
	solvers := 0
	if s.solvers != nil {
		solvers = s.solvers.Len()
	}
	return &HealthResponse{
		Status:        "ok",
		Solvers:       solvers,
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
	}, nil
}
