package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/craftsolver-go/internal/adapters/persistence"
	"github.com/andrescamacho/craftsolver-go/internal/domain/recipe"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/database"
	"github.com/andrescamacho/craftsolver-go/test/helpers"
)

type recipeCatalogContext struct {
	repo *persistence.GormRecipeRepository
	row  *recipe.Row
}

func (rc *recipeCatalogContext) reset() error {
	rc.row = nil
	if helpers.SharedTestDB == nil {
		return fmt.Errorf("shared test database not initialized")
	}
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}
	rc.repo = persistence.NewGormRecipeRepository(helpers.SharedTestDB)
	return nil
}

// Given / When steps

func (rc *recipeCatalogContext) theBundledCatalogIsSeeded() error {
	_, err := database.SeedRecipes(context.Background(), rc.repo)
	return err
}

func (rc *recipeCatalogContext) iLookUpRecipe(id int) error {
	row, err := rc.repo.FindByID(context.Background(), id)
	if err != nil {
		world.err = err
		return nil
	}
	rc.row = row
	return nil
}

// Then steps

func (rc *recipeCatalogContext) theCatalogShouldHoldEveryBundledRecipe() error {
	bundled, err := recipe.BundledCatalog()
	if err != nil {
		return err
	}
	count, err := rc.repo.Count(context.Background())
	if err != nil {
		return err
	}
	if count != int64(len(bundled)) {
		return fmt.Errorf("expected %d recipes, got %d", len(bundled), count)
	}
	return nil
}

func (rc *recipeCatalogContext) theRecipeShouldBeNamed(name string) error {
	if rc.row == nil {
		return fmt.Errorf("no recipe was found")
	}
	if rc.row.Name != name {
		return fmt.Errorf("expected recipe %q, got %q", name, rc.row.Name)
	}
	return nil
}

func (rc *recipeCatalogContext) theScaledRecipeShouldHaveDurability(expected int) error {
	if rc.row == nil {
		return fmt.Errorf("no recipe was found")
	}
	r, err := rc.row.Recipe()
	if err != nil {
		return err
	}
	if r.Durability != expected {
		return fmt.Errorf("expected durability %d, got %d", expected, r.Durability)
	}
	return nil
}

// InitializeRecipeCatalogScenario registers the catalog repository steps
func InitializeRecipeCatalogScenario(ctx *godog.ScenarioContext) {
	rc := &recipeCatalogContext{}

	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		return c, rc.reset()
	})

	ctx.Step(`^the bundled recipe catalog is seeded$`, rc.theBundledCatalogIsSeeded)
	ctx.Step(`^the bundled recipe catalog is seeded again$`, rc.theBundledCatalogIsSeeded)
	ctx.Step(`^I look up recipe (\d+)$`, rc.iLookUpRecipe)
	ctx.Step(`^the catalog should hold every bundled recipe$`, rc.theCatalogShouldHoldEveryBundledRecipe)
	ctx.Step(`^the recipe should be named "([^"]*)"$`, rc.theRecipeShouldBeNamed)
	ctx.Step(`^the scaled recipe should have (\d+) durability$`, rc.theScaledRecipeShouldHaveDurability)
}
