package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftsolver-go/internal/application/common"
	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/domain/shared"
)

// BuildStatusQuery creates the opening status of a craft
type BuildStatusQuery struct {
	Attributes     crafting.Attributes
	Recipe         crafting.Recipe
	InitialQuality int `validate:"min=0"`
}

// BuildStatusResponse carries the opening status
type BuildStatusResponse struct {
	Status crafting.Status
}

// BuildStatusHandler handles BuildStatusQuery
type BuildStatusHandler struct{}

// NewBuildStatusHandler creates a new BuildStatusHandler
func NewBuildStatusHandler() *BuildStatusHandler {
	return &BuildStatusHandler{}
}

// Handle executes the BuildStatus query
func (h *BuildStatusHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*BuildStatusQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *BuildStatusQuery")
	}
	if err := common.ValidateStruct(query); err != nil {
		return nil, err
	}
	if query.InitialQuality > query.Recipe.Quality {
		return nil, shared.NewValidationError("InitialQuality",
			fmt.Sprintf("%d exceeds recipe quality %d", query.InitialQuality, query.Recipe.Quality))
	}

	status := crafting.NewStatus(query.Attributes, query.Recipe)
	status.Quality = query.InitialQuality
	return &BuildStatusResponse{Status: status}, nil
}
