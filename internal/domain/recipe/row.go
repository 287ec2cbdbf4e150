package recipe

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

// Row is one entry of the recipe catalog: an item recipe pointing at a recipe
// level row plus the percentage factors scaling it.
type Row struct {
	ID               int    `json:"id"`
	Level            int    `json:"rlv"`
	Name             string `json:"name"`
	Job              string `json:"job"`
	DifficultyFactor int    `json:"difficulty_factor"`
	QualityFactor    int    `json:"quality_factor"`
	DurabilityFactor int    `json:"durability_factor"`
}

// Recipe builds the scaled recipe for this row.
func (r Row) Recipe() (crafting.Recipe, error) {
	return crafting.NewRecipe(r.Level, r.DifficultyFactor, r.QualityFactor, r.DurabilityFactor)
}

// Repository stores the catalog. List returns rows ordered by ID; an empty job
// matches every row.
type Repository interface {
	List(ctx context.Context, job string) ([]Row, error)
	FindByID(ctx context.Context, id int) (*Row, error)
	SaveAll(ctx context.Context, rows []Row) error
	Count(ctx context.Context) (int64, error)
}

// ErrRowNotFound is returned by FindByID for an unknown ID.
type ErrRowNotFound struct {
	ID int
}

func (e *ErrRowNotFound) Error() string {
	return fmt.Sprintf("recipe %d not found", e.ID)
}
