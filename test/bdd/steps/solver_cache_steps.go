package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/craftsolver-go/internal/application/solving"
)

type solverCacheContext struct {
	cache *solving.Cache
}

func (cc *solverCacheContext) reset() {
	cc.cache = solving.NewCache()
}

// Given steps

func (cc *solverCacheContext) anEmptySolverCache() error {
	cc.reset()
	return nil
}

func (cc *solverCacheContext) aSolverWasCreated(progressList, qualityList string) error {
	if err := cc.iCreateASolver(progressList, qualityList); err != nil {
		return err
	}
	return world.err
}

// When steps

func (cc *solverCacheContext) iCreateASolver(progressList, qualityList string) error {
	s, err := world.currentStatus()
	if err != nil {
		return err
	}
	progressActions, err := parseActionList(progressList)
	if err != nil {
		return err
	}
	qualityActions, err := parseActionList(qualityList)
	if err != nil {
		return err
	}
	_, world.err = cc.cache.Create(context.Background(), s, progressActions, qualityActions)
	return nil
}

func (cc *solverCacheContext) iReadTheSolver() error {
	s, err := world.currentStatus()
	if err != nil {
		return err
	}
	rotation, err := cc.cache.Read(context.Background(), s)
	if err != nil {
		world.err = err
		return nil
	}
	world.rotation = rotation.Actions
	world.quality = rotation.Quality
	return nil
}

// Then steps

func (cc *solverCacheContext) theSolverCacheShouldHold(expected int) error {
	if got := cc.cache.Len(); got != expected {
		return fmt.Errorf("expected %d cached solvers, got %d", expected, got)
	}
	return nil
}

// InitializeSolverCacheScenario registers the solver cache steps
func InitializeSolverCacheScenario(ctx *godog.ScenarioContext) {
	cc := &solverCacheContext{}

	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		cc.reset()
		return c, nil
	})

	ctx.Step(`^an empty solver cache$`, cc.anEmptySolverCache)
	ctx.Step(`^a solver was created with progress actions "([^"]*)" and quality actions "([^"]*)"$`, cc.aSolverWasCreated)
	ctx.Step(`^I create a solver with progress actions "([^"]*)" and quality actions "([^"]*)"$`, cc.iCreateASolver)
	ctx.Step(`^I read the solver$`, cc.iReadTheSolver)
	ctx.Step(`^the solver cache should hold (\d+) solvers?$`, cc.theSolverCacheShouldHold)
}
