package persistence

import "time"

// RecipeModel represents the recipes table
type RecipeModel struct {
	ID               int       `gorm:"column:id;primaryKey;autoIncrement:false"`
	Level            int       `gorm:"column:rlv;not null"`
	Name             string    `gorm:"column:name;not null"`
	Job              string    `gorm:"column:job;not null;index"`
	DifficultyFactor int       `gorm:"column:difficulty_factor;not null"`
	QualityFactor    int       `gorm:"column:quality_factor;not null"`
	DurabilityFactor int       `gorm:"column:durability_factor;not null"`
	SeededAt         time.Time `gorm:"column:seeded_at;not null"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}
