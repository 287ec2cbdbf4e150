package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/domain/solver"
)

type solverContext struct {
	driverProgress int
	driverActions  []crafting.Action
}

func (sc *solverContext) reset() {
	sc.driverProgress = 0
	sc.driverActions = nil
}

// When steps

func (sc *solverContext) iBuildASolver(progressList, qualityList string) error {
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

	d := solver.NewDriver(s)
	d.Init(progressActions)
	sv := solver.NewSolver(d)
	sv.Init(qualityActions)

	world.quality, world.rotation = sv.ReadAll(s)
	return nil
}

func (sc *solverContext) iBuildADriver(progressList string) error {
	s, err := world.currentStatus()
	if err != nil {
		return err
	}
	progressActions, err := parseActionList(progressList)
	if err != nil {
		return err
	}

	d := solver.NewDriver(s)
	d.Init(progressActions)
	sc.driverProgress, sc.driverActions = d.ReadAll(s)
	return nil
}

// Then steps

func (sc *solverContext) replayingTheRotationShouldFinishWithQuality(expected int) error {
	s, err := world.currentStatus()
	if err != nil {
		return err
	}
	for i, a := range world.rotation {
		if err := s.IsActionAllowed(a); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		s.CastAction(a)
	}
	if s.Progress < s.Recipe.Difficulty {
		return fmt.Errorf("rotation stopped at progress %d/%d", s.Progress, s.Recipe.Difficulty)
	}
	if s.Quality != expected {
		return fmt.Errorf("expected replayed quality %d, got %d", expected, s.Quality)
	}
	return nil
}

func (sc *solverContext) theDriverShouldReachProgressInSteps(progress, steps int) error {
	if sc.driverProgress != progress {
		return fmt.Errorf("expected driver progress %d, got %d", progress, sc.driverProgress)
	}
	if len(sc.driverActions) != steps {
		return fmt.Errorf("expected %d driver steps, got %d (%s)", steps, len(sc.driverActions), formatActions(sc.driverActions))
	}
	return nil
}

// InitializeSolverScenario registers the Driver and Solver table steps
func InitializeSolverScenario(ctx *godog.ScenarioContext) {
	sc := &solverContext{}

	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		sc.reset()
		return c, nil
	})

	ctx.Step(`^I build a solver with progress actions "([^"]*)" and quality actions "([^"]*)"$`, sc.iBuildASolver)
	ctx.Step(`^I build a driver with progress actions "([^"]*)"$`, sc.iBuildADriver)
	ctx.Step(`^replaying the rotation should finish the craft with quality (\d+)$`, sc.replayingTheRotationShouldFinishWithQuality)
	ctx.Step(`^the driver should reach (\d+) progress in (\d+) steps$`, sc.theDriverShouldReachProgressInSteps)
}
