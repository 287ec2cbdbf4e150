package database

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftsolver-go/internal/domain/recipe"
)

// SeedRecipes upserts the bundled catalog into repo and returns the row count.
// A malformed bundled catalog is returned as *recipe.ErrMalformedCatalog.
func SeedRecipes(ctx context.Context, repo recipe.Repository) (int, error) {
	rows, err := recipe.BundledCatalog()
	if err != nil {
		return 0, err
	}
	if err := repo.SaveAll(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to seed recipes: %w", err)
	}
	return len(rows), nil
}
