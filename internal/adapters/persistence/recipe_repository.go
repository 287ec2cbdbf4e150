package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/craftsolver-go/internal/domain/recipe"
)

const saveBatchSize = 200

// GormRecipeRepository implements recipe.Repository using GORM
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GORM recipe repository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// List returns catalog rows ordered by id, filtered by job when non-empty
func (r *GormRecipeRepository) List(ctx context.Context, job string) ([]recipe.Row, error) {
	query := r.db.WithContext(ctx).Order("id")
	if job != "" {
		query = query.Where("job = ?", job)
	}

	var models []RecipeModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	rows := make([]recipe.Row, 0, len(models))
	for i := range models {
		rows = append(rows, modelToRow(&models[i]))
	}
	return rows, nil
}

// FindByID retrieves one catalog row
func (r *GormRecipeRepository) FindByID(ctx context.Context, id int) (*recipe.Row, error) {
	var model RecipeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &recipe.ErrRowNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to find recipe: %w", result.Error)
	}
	row := modelToRow(&model)
	return &row, nil
}

// SaveAll upserts the rows by id
func (r *GormRecipeRepository) SaveAll(ctx context.Context, rows []recipe.Row) error {
	if len(rows) == 0 {
		return nil
	}
	now := time.Now().UTC()
	models := make([]RecipeModel, 0, len(rows))
	for _, row := range rows {
		models = append(models, rowToModel(row, now))
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(models, saveBatchSize)
	if result.Error != nil {
		return fmt.Errorf("failed to save recipes: %w", result.Error)
	}
	return nil
}

// Count returns the number of stored rows
func (r *GormRecipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RecipeModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

func modelToRow(m *RecipeModel) recipe.Row {
	return recipe.Row{
		ID:               m.ID,
		Level:            m.Level,
		Name:             m.Name,
		Job:              m.Job,
		DifficultyFactor: m.DifficultyFactor,
		QualityFactor:    m.QualityFactor,
		DurabilityFactor: m.DurabilityFactor,
	}
}

func rowToModel(row recipe.Row, seededAt time.Time) RecipeModel {
	return RecipeModel{
		ID:               row.ID,
		Level:            row.Level,
		Name:             row.Name,
		Job:              row.Job,
		DifficultyFactor: row.DifficultyFactor,
		QualityFactor:    row.QualityFactor,
		DurabilityFactor: row.DurabilityFactor,
		SeededAt:         seededAt,
	}
}
