package steps

import (
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

// When steps

func (w *craftWorld) theCrafterCasts(name string) error {
	if w.status == nil {
		return fmt.Errorf("no crafter and recipe configured")
	}
	a, err := crafting.ParseAction(name)
	if err != nil {
		return err
	}
	if err := w.status.IsActionAllowed(a); err != nil {
		return fmt.Errorf("expected %s to be allowed: %w", a, err)
	}
	w.status.CastAction(a)
	return nil
}

// theCrafterTries records a rejection instead of failing the step
func (w *craftWorld) theCrafterTries(name string) error {
	if w.status == nil {
		return fmt.Errorf("no crafter and recipe configured")
	}
	a, err := crafting.ParseAction(name)
	if err != nil {
		w.err = err
		return nil
	}
	if err := w.status.IsActionAllowed(a); err != nil {
		w.err = err
		return nil
	}
	w.status.CastAction(a)
	return nil
}

// Then steps

func (w *craftWorld) theActionShouldBeRejectedWithReason(reason string) error {
	var castErr *crafting.CastActionError
	if !errors.As(w.err, &castErr) {
		return fmt.Errorf("expected a rejected action, got %v", w.err)
	}
	if string(castErr.Reason) != reason {
		return fmt.Errorf("expected reason %q, got %q", reason, castErr.Reason)
	}
	return nil
}

func (w *craftWorld) checkStatusField(field string, expected int, get func(*crafting.Status) int) error {
	if w.status == nil {
		return fmt.Errorf("no crafter and recipe configured")
	}
	if got := get(w.status); got != expected {
		return fmt.Errorf("expected %s %d, got %d", field, expected, got)
	}
	return nil
}

func (w *craftWorld) theCraftShouldBeFinished() error {
	if w.status == nil || !w.status.IsFinished() {
		return fmt.Errorf("expected the craft to be finished")
	}
	return nil
}

// InitializeCraftingScenario registers the rules engine steps
func InitializeCraftingScenario(sc *godog.ScenarioContext) {
	sc.Step(`^the crafter casts "([^"]*)"$`, func(name string) error { return world.theCrafterCasts(name) })
	sc.Step(`^the crafter tries "([^"]*)"$`, func(name string) error { return world.theCrafterTries(name) })

	sc.Step(`^the action should be rejected with reason "([^"]*)"$`,
		func(reason string) error { return world.theActionShouldBeRejectedWithReason(reason) })
	sc.Step(`^the craft should be finished$`, func() error { return world.theCraftShouldBeFinished() })

	sc.Step(`^the craft progress should be (\d+)$`, func(expected int) error {
		return world.checkStatusField("progress", expected, func(s *crafting.Status) int { return s.Progress })
	})
	sc.Step(`^the craft quality should be (\d+)$`, func(expected int) error {
		return world.checkStatusField("quality", expected, func(s *crafting.Status) int { return s.Quality })
	})
	sc.Step(`^the craft durability should be (\d+)$`, func(expected int) error {
		return world.checkStatusField("durability", expected, func(s *crafting.Status) int { return s.Durability })
	})
	sc.Step(`^the craft step should be (\d+)$`, func(expected int) error {
		return world.checkStatusField("step", expected, func(s *crafting.Status) int { return s.Step })
	})
	sc.Step(`^the crafter should have (\d+) Inner Quiet stacks$`, func(expected int) error {
		return world.checkStatusField("inner quiet", expected, func(s *crafting.Status) int { return s.Buffs.InnerQuiet })
	})
	sc.Step(`^the crafter should have (\d+) craft points left$`, func(expected int) error {
		return world.checkStatusField("craft points", expected, func(s *crafting.Status) int { return s.CraftPoints })
	})
}
