package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
)

// PrometheusMiddleware creates a middleware that records request execution metrics
//
// Request names are extracted via reflection with the package prefix removed,
// so "*commands.CreateSolverCommand" is recorded as "CreateSolverCommand".
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		name := extractCommandName(request)
		start := time.Now()

		response, err := next(ctx, request)

		collector.RecordCommandExecution(name, time.Since(start).Seconds(), err == nil)
		return response, err
	}
}

// extractCommandName extracts a clean request name using reflection
// Examples:
//   - "*commands.CreateSolverCommand" → "CreateSolverCommand"
//   - "*queries.SimulateQuery" → "SimulateQuery"
func extractCommandName(request mediator.Request) string {
	if request == nil {
		return "UnknownCommand"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	parts := strings.Split(fullName, ".")
	return parts[len(parts)-1]
}
