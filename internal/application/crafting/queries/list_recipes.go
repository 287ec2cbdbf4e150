package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
	"github.com/andrescamacho/craftsolver-go/internal/domain/recipe"
)

// ListRecipesQuery lists catalog rows, optionally for one job
type ListRecipesQuery struct {
	Job string
}

// ListRecipesResponse holds rows ordered by ID
type ListRecipesResponse struct {
	Recipes []recipe.Row
}

// ListRecipesHandler handles ListRecipesQuery
type ListRecipesHandler struct {
	repo recipe.Repository
}

// NewListRecipesHandler creates a new ListRecipesHandler
func NewListRecipesHandler(repo recipe.Repository) *ListRecipesHandler {
	return &ListRecipesHandler{repo: repo}
}

// Handle executes the ListRecipes query
func (h *ListRecipesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ListRecipesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListRecipesQuery")
	}

	rows, err := h.repo.List(ctx, query.Job)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return &ListRecipesResponse{Recipes: rows}, nil
}
