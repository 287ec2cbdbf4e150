package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/domain/recipe"
)

// GetRecipeQuery builds the recipe for one catalog row
type GetRecipeQuery struct {
	ID int
}

// GetRecipeResponse carries the catalog row and its scaled recipe
type GetRecipeResponse struct {
	Row    recipe.Row
	Recipe crafting.Recipe
}

// GetRecipeHandler handles GetRecipeQuery
type GetRecipeHandler struct {
	repo recipe.Repository
}

// NewGetRecipeHandler creates a new GetRecipeHandler
func NewGetRecipeHandler(repo recipe.Repository) *GetRecipeHandler {
	return &GetRecipeHandler{repo: repo}
}

// Handle executes the GetRecipe query
func (h *GetRecipeHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetRecipeQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetRecipeQuery")
	}

	row, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}
	built, err := row.Recipe()
	if err != nil {
		return nil, err
	}
	return &GetRecipeResponse{Row: *row, Recipe: built}, nil
}
