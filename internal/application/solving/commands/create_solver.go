package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftsolver-go/internal/application/common"
	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
	"github.com/andrescamacho/craftsolver-go/internal/application/solving"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/domain/shared"
)

// CreateSolverCommand builds the tables for the status' attributes and recipe
type CreateSolverCommand struct {
	Status          crafting.Status
	ProgressActions []crafting.Action
	QualityActions  []crafting.Action
}

// CreateSolverResponse carries the stored build
type CreateSolverResponse struct {
	Build *solving.BuildInfo
}

// CreateSolverHandler handles CreateSolverCommand
type CreateSolverHandler struct {
	cache          *solving.Cache
	maxCraftPoints int
}

// HandlerOption configures a CreateSolverHandler
type HandlerOption func(*CreateSolverHandler)

// WithMaxCraftPoints rejects builds whose attribute craft points exceed limit.
// Zero disables the check.
func WithMaxCraftPoints(limit int) HandlerOption {
	return func(h *CreateSolverHandler) { h.maxCraftPoints = limit }
}

// NewCreateSolverHandler creates a new CreateSolverHandler
func NewCreateSolverHandler(cache *solving.Cache, opts ...HandlerOption) *CreateSolverHandler {
	h := &CreateSolverHandler{cache: cache}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle executes the CreateSolver command
func (h *CreateSolverHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*CreateSolverCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateSolverCommand")
	}

	if err := common.ValidateStatus(cmd.Status); err != nil {
		return nil, err
	}
	if h.maxCraftPoints > 0 && cmd.Status.Attributes.CraftPoints > h.maxCraftPoints {
		return nil, shared.NewValidationError("Status.Attributes.CraftPoints",
			fmt.Sprintf("%d exceeds the configured limit %d", cmd.Status.Attributes.CraftPoints, h.maxCraftPoints))
	}
	if err := common.ValidateTableActions("ProgressActions", cmd.ProgressActions); err != nil {
		return nil, err
	}
	if err := common.ValidateTableActions("QualityActions", cmd.QualityActions); err != nil {
		return nil, err
	}

	build, err := h.cache.Create(ctx, cmd.Status, cmd.ProgressActions, cmd.QualityActions)
	if err != nil {
		return nil, err
	}
	return &CreateSolverResponse{Build: build}, nil
}
