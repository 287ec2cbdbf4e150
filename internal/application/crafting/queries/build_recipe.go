package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftsolver-go/internal/application/common"
	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

// BuildRecipeQuery scales a recipe level row by percentage factors
type BuildRecipeQuery struct {
	Level            int `validate:"min=1"`
	DifficultyFactor int `validate:"min=1"`
	QualityFactor    int `validate:"min=0"`
	DurabilityFactor int `validate:"min=1"`
}

// BuildRecipeResponse carries the scaled recipe
type BuildRecipeResponse struct {
	Recipe crafting.Recipe
}

// BuildRecipeHandler handles BuildRecipeQuery
type BuildRecipeHandler struct{}

// NewBuildRecipeHandler creates a new BuildRecipeHandler
func NewBuildRecipeHandler() *BuildRecipeHandler {
	return &BuildRecipeHandler{}
}

// Handle executes the BuildRecipe query
func (h *BuildRecipeHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*BuildRecipeQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *BuildRecipeQuery")
	}
	if err := common.ValidateStruct(query); err != nil {
		return nil, err
	}

	recipe, err := crafting.NewRecipe(query.Level, query.DifficultyFactor, query.QualityFactor, query.DurabilityFactor)
	if err != nil {
		return nil, err
	}
	return &BuildRecipeResponse{Recipe: recipe}, nil
}
