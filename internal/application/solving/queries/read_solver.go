package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftsolver-go/internal/application/common"
	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
	"github.com/andrescamacho/craftsolver-go/internal/application/solving"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

// ReadSolverQuery asks a built solver for the rotation from Status
type ReadSolverQuery struct {
	Status crafting.Status
}

// ReadSolverResponse is the recommended rotation
type ReadSolverResponse struct {
	Actions []crafting.Action
	Quality int
}

// ReadSolverHandler handles ReadSolverQuery
type ReadSolverHandler struct {
	cache *solving.Cache
}

// NewReadSolverHandler creates a new ReadSolverHandler
func NewReadSolverHandler(cache *solving.Cache) *ReadSolverHandler {
	return &ReadSolverHandler{cache: cache}
}

// Handle executes the ReadSolver query
func (h *ReadSolverHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ReadSolverQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ReadSolverQuery")
	}

	if err := common.ValidateStatus(query.Status); err != nil {
		return nil, err
	}

	rotation, err := h.cache.Read(ctx, query.Status)
	if err != nil {
		return nil, err
	}
	return &ReadSolverResponse{Actions: rotation.Actions, Quality: rotation.Quality}, nil
}
