package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/andrescamacho/craftsolver-go/internal/application/solving"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/domain/recipe"
	"github.com/andrescamacho/craftsolver-go/internal/domain/shared"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/presets"
)

// toStatus maps handler errors onto gRPC status codes. Errors that already
// carry a status pass through unchanged.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var (
		exists        *solving.ErrSolverAlreadyExists
		notExists     *solving.ErrSolverNotExists
		rowNotFound   *recipe.ErrRowNotFound
		validation    *shared.ValidationError
		unknownLevel  *crafting.ErrUnknownRecipeLevel
		unknownAction *crafting.ErrUnknownAction
		unknownPreset *presets.ErrUnknownPreset
	)
	switch {
	case errors.As(err, &exists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.As(err, &notExists), errors.As(err, &rowNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &validation), errors.As(err, &unknownLevel),
		errors.As(err, &unknownAction), errors.As(err, &unknownPreset):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
