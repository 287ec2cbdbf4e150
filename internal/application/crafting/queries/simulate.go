package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/craftsolver-go/internal/application/common"
	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

// SimulateQuery replays actions from a status
type SimulateQuery struct {
	Status  crafting.Status
	Actions []crafting.Action
}

// SkippedAction records an action that was not legal at its position
type SkippedAction struct {
	Position int                       `json:"pos"`
	Reason   crafting.CastActionReason `json:"err"`
}

// SimulateResponse is the final status plus every skipped action
type SimulateResponse struct {
	Status  crafting.Status
	Skipped []SkippedAction
}

// SimulateHandler handles SimulateQuery
type SimulateHandler struct{}

// NewSimulateHandler creates a new SimulateHandler
func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// Handle executes the Simulate query. Illegal actions are skipped, not applied.
func (h *SimulateHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*SimulateQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SimulateQuery")
	}
	if err := common.ValidateStatus(query.Status); err != nil {
		return nil, err
	}
	if err := common.ValidateActions("Actions", query.Actions); err != nil {
		return nil, err
	}

	status := query.Status
	skipped := []SkippedAction{}
	for pos, action := range query.Actions {
		if err := status.IsActionAllowed(action); err != nil {
			var castErr *crafting.CastActionError
			if !errors.As(err, &castErr) {
				return nil, err
			}
			skipped = append(skipped, SkippedAction{Position: pos, Reason: castErr.Reason})
			continue
		}
		status.CastAction(action)
	}

	common.LoggerFromContext(ctx).Log("DEBUG", "simulated actions", map[string]interface{}{
		"actions":  len(query.Actions),
		"skipped":  len(skipped),
		"progress": status.Progress,
		"quality":  status.Quality,
	})
	return &SimulateResponse{Status: status, Skipped: skipped}, nil
}
