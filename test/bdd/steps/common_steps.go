package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

// craftWorld is the crafting problem shared by every step file in a scenario
type craftWorld struct {
	attrs    crafting.Attributes
	recipe   crafting.Recipe
	status   *crafting.Status
	rotation []crafting.Action
	quality  int
	err      error
}

// world is replaced before each scenario
var world = &craftWorld{}

func (w *craftWorld) rebuildStatus() {
	if w.recipe.Difficulty == 0 || w.attrs.Level == 0 {
		return
	}
	s := crafting.NewStatus(w.attrs, w.recipe)
	w.status = &s
}

func (w *craftWorld) currentStatus() (crafting.Status, error) {
	if w.status == nil {
		return crafting.Status{}, fmt.Errorf("no crafter and recipe configured")
	}
	return *w.status, nil
}

func testRecipe(difficulty, durability int) crafting.Recipe {
	return crafting.Recipe{
		Level:            1,
		JobLevel:         1,
		Difficulty:       difficulty,
		Quality:          1000,
		Durability:       durability,
		ProgressDivider:  50,
		QualityDivider:   30,
		ProgressModifier: 100,
		QualityModifier:  100,
	}
}

// parseActionList reads a comma separated list of action names
func parseActionList(list string) ([]crafting.Action, error) {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return crafting.ParseActions(names)
}

func formatActions(actions []crafting.Action) string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}

// Given steps

func (w *craftWorld) aCrafter(level, craftsmanship, control, craftPoints int) error {
	w.attrs = crafting.Attributes{
		Level:         level,
		Craftsmanship: craftsmanship,
		Control:       control,
		CraftPoints:   craftPoints,
	}
	w.rebuildStatus()
	return nil
}

func (w *craftWorld) aTestRecipe(difficulty, durability int) error {
	w.recipe = testRecipe(difficulty, durability)
	w.rebuildStatus()
	return nil
}

// Then steps

func (w *craftWorld) theRotationShouldBe(expected string) error {
	if got := formatActions(w.rotation); got != expected {
		return fmt.Errorf("expected rotation %q, got %q", expected, got)
	}
	return nil
}

func (w *craftWorld) theBestQualityShouldBe(expected int) error {
	if w.quality != expected {
		return fmt.Errorf("expected quality %d, got %d", expected, w.quality)
	}
	return nil
}

func (w *craftWorld) theOperationShouldFailWithErrorContaining(fragment string) error {
	if w.err == nil {
		return fmt.Errorf("expected an error containing %q, got none", fragment)
	}
	if !strings.Contains(w.err.Error(), fragment) {
		return fmt.Errorf("expected error containing %q, got %q", fragment, w.err.Error())
	}
	return nil
}

// InitializeCommonSteps registers the crafter and recipe setup plus the
// assertions shared across features
func InitializeCommonSteps(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		world = &craftWorld{}
		return ctx, nil
	})

	sc.Step(`^a level (\d+) crafter with (\d+) craftsmanship, (\d+) control and (\d+) craft points$`,
		func(level, craftsmanship, control, craftPoints int) error {
			return world.aCrafter(level, craftsmanship, control, craftPoints)
		})
	sc.Step(`^a test recipe with (\d+) difficulty and (\d+) durability$`,
		func(difficulty, durability int) error { return world.aTestRecipe(difficulty, durability) })

	sc.Step(`^the rotation should be "([^"]*)"$`,
		func(expected string) error { return world.theRotationShouldBe(expected) })
	sc.Step(`^the best quality should be (\d+)$`,
		func(expected int) error { return world.theBestQualityShouldBe(expected) })
	sc.Step(`^the operation should fail with error containing "([^"]*)"$`,
		func(fragment string) error { return world.theOperationShouldFailWithErrorContaining(fragment) })
}
