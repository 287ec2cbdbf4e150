package grpc

import (
	"time"

	"github.com/andrescamacho/craftsolver-go/internal/application/crafting/queries"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/domain/recipe"
)

// Wire messages of the craftsolver.v1.CraftSolver service. Action lists sent
// by clients are names so unknown ones are reported with a suggestion.

type BuildRecipeRequest struct {
	// RecipeID selects a catalog row; when set the factors below are ignored
	RecipeID         int `json:"recipe_id,omitempty"`
	Level            int `json:"rlv"`
	DifficultyFactor int `json:"difficulty_factor"`
	QualityFactor    int `json:"quality_factor"`
	DurabilityFactor int `json:"durability_factor"`
}

type BuildRecipeResponse struct {
	Recipe crafting.Recipe `json:"recipe"`
	Row    *recipe.Row     `json:"row,omitempty"`
}

type BuildStatusRequest struct {
	Attributes     crafting.Attributes `json:"attributes"`
	Recipe         crafting.Recipe     `json:"recipe"`
	InitialQuality int                 `json:"initial_quality"`
}

type BuildStatusResponse struct {
	Status crafting.Status `json:"status"`
}

type SimulateRequest struct {
	Status  crafting.Status `json:"status"`
	Actions []string        `json:"actions"`
}

type SimulateResponse struct {
	Status crafting.Status         `json:"status"`
	Errors []queries.SkippedAction `json:"errors"`
}

type ListRecipesRequest struct {
	Job string `json:"job,omitempty"`
}

type ListRecipesResponse struct {
	Recipes []recipe.Row `json:"recipes"`
}

type CreateSolverRequest struct {
	Status crafting.Status `json:"status"`
	// Preset names an action preset; explicit lists override its halves
	Preset          string   `json:"preset,omitempty"`
	ProgressActions []string `json:"progress_actions,omitempty"`
	QualityActions  []string `json:"quality_actions,omitempty"`
}

type CreateSolverResponse struct {
	BuildID         string            `json:"build_id"`
	Key             string            `json:"key"`
	BuiltAt         time.Time         `json:"built_at"`
	DurationMs      int64             `json:"duration_ms"`
	DriverCells     int               `json:"driver_cells"`
	SolverCells     int               `json:"solver_cells"`
	ProgressActions []crafting.Action `json:"progress_actions"`
	QualityActions  []crafting.Action `json:"quality_actions"`
}

type ReadSolverRequest struct {
	Status crafting.Status `json:"status"`
}

type ReadSolverResponse struct {
	Actions []crafting.Action `json:"actions"`
	Quality int               `json:"quality"`
}

type ListPresetsRequest struct{}

type PresetInfo struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Progress    []crafting.Action `json:"progress"`
	Quality     []crafting.Action `json:"quality"`
}

type ListPresetsResponse struct {
	Presets []PresetInfo `json:"presets"`
}

type HealthRequest struct{}

type HealthResponse struct {
	Status        string `json:"status"`
	Solvers       int    `json:"solvers"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}
