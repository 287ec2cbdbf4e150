package setup

import (
	"reflect"

	craftingQueries "github.com/andrescamacho/craftsolver-go/internal/application/crafting/queries"
	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
	"github.com/andrescamacho/craftsolver-go/internal/application/solving"
	solvingCommands "github.com/andrescamacho/craftsolver-go/internal/application/solving/commands"
	solvingQueries "github.com/andrescamacho/craftsolver-go/internal/application/solving/queries"
	"github.com/andrescamacho/craftsolver-go/internal/domain/recipe"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	recipeRepo     recipe.Repository
	cache          *solving.Cache
	maxCraftPoints int
}

// NewHandlerRegistry creates a new handler registry with required dependencies.
// A nil cache gets a fresh one with default options.
func NewHandlerRegistry(recipeRepo recipe.Repository, cache *solving.Cache, maxCraftPoints int) *HandlerRegistry {
	if cache == nil {
		cache = solving.NewCache()
	}

	return &HandlerRegistry{
		recipeRepo:     recipeRepo,
		cache:          cache,
		maxCraftPoints: maxCraftPoints,
	}
}

// Cache returns the solver cache the solving handlers share
func (r *HandlerRegistry) Cache() *solving.Cache {
	return r.cache
}

// RegisterCraftingHandlers registers the stateless crafting queries
//
// This method registers:
//   - BuildRecipeQuery → BuildRecipeHandler
//   - BuildStatusQuery → BuildStatusHandler
//   - SimulateQuery → SimulateHandler
//   - ListRecipesQuery → ListRecipesHandler (needs the recipe repository)
//   - GetRecipeQuery → GetRecipeHandler (needs the recipe repository)
func (r *HandlerRegistry) RegisterCraftingHandlers(m mediator.Mediator) error {
	handlers := map[reflect.Type]mediator.RequestHandler{
		reflect.TypeOf(&craftingQueries.BuildRecipeQuery{}): craftingQueries.NewBuildRecipeHandler(),
		reflect.TypeOf(&craftingQueries.BuildStatusQuery{}): craftingQueries.NewBuildStatusHandler(),
		reflect.TypeOf(&craftingQueries.SimulateQuery{}):    craftingQueries.NewSimulateHandler(),
	}
	if r.recipeRepo != nil {
		handlers[reflect.TypeOf(&craftingQueries.ListRecipesQuery{})] = craftingQueries.NewListRecipesHandler(r.recipeRepo)
		handlers[reflect.TypeOf(&craftingQueries.GetRecipeQuery{})] = craftingQueries.NewGetRecipeHandler(r.recipeRepo)
	}

	for requestType, handler := range handlers {
		if err := m.Register(requestType, handler); err != nil {
			return err
		}
	}
	return nil
}

// RegisterSolvingHandlers registers the solver cache command and query
//
// This method registers:
//   - CreateSolverCommand → CreateSolverHandler
//   - ReadSolverQuery → ReadSolverHandler
//
// Both share the registry's cache, so a solver created through one is visible
// to the other.
func (r *HandlerRegistry) RegisterSolvingHandlers(m mediator.Mediator) error {
	createHandler := solvingCommands.NewCreateSolverHandler(r.cache, solvingCommands.WithMaxCraftPoints(r.maxCraftPoints))
	if err := m.Register(
		reflect.TypeOf(&solvingCommands.CreateSolverCommand{}),
		createHandler,
	); err != nil {
		return err
	}

	readHandler := solvingQueries.NewReadSolverHandler(r.cache)
	if err := m.Register(
		reflect.TypeOf(&solvingQueries.ReadSolverQuery{}),
		readHandler,
	); err != nil {
		return err
	}

	return nil
}

// CreateConfiguredMediator creates a new mediator with every handler registered.
// Middleware is applied in order, the first one outermost.
func (r *HandlerRegistry) CreateConfiguredMediator(middleware ...mediator.Middleware) (mediator.Mediator, error) {
	m := mediator.NewMediator()
	for _, mw := range middleware {
		m.Use(mw)
	}

	if err := r.RegisterCraftingHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterSolvingHandlers(m); err != nil {
		return nil, err
	}

	return m, nil
}
