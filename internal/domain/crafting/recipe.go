package crafting

import "sort"

// Recipe is the scaled crafting target. All fields are plain integers so the
// value can be used directly as part of a map key.
type Recipe struct {
	Level            int `json:"rlv" validate:"min=1"`
	JobLevel         int `json:"job_level" validate:"min=1,max=100"`
	Difficulty       int `json:"difficulty" validate:"min=1,max=65535"`
	Quality          int `json:"quality" validate:"min=0"`
	Durability       int `json:"durability" validate:"min=1,max=200"`
	ProgressDivider  int `json:"progress_divider" validate:"min=1"`
	QualityDivider   int `json:"quality_divider" validate:"min=1"`
	ProgressModifier int `json:"progress_modifier" validate:"min=1,max=100"`
	QualityModifier  int `json:"quality_modifier" validate:"min=1,max=100"`
}

// NewRecipe scales the recipe level row by the recipe's percentage factors.
func NewRecipe(level, difficultyFactor, qualityFactor, durabilityFactor int) (Recipe, error) {
	row, ok := recipeLevels[level]
	if !ok {
		return Recipe{}, &ErrUnknownRecipeLevel{Level: level}
	}
	return Recipe{
		Level:            level,
		JobLevel:         row.jobLevel,
		Difficulty:       row.difficulty * difficultyFactor / 100,
		Quality:          row.quality * qualityFactor / 100,
		Durability:       row.durability * durabilityFactor / 100,
		ProgressDivider:  row.progressDivider,
		QualityDivider:   row.qualityDivider,
		ProgressModifier: row.progressModifier,
		QualityModifier:  row.qualityModifier,
	}, nil
}

// KnownRecipeLevels lists the levels NewRecipe accepts, ascending.
func KnownRecipeLevels() []int {
	levels := make([]int, 0, len(recipeLevels))
	for lv := range recipeLevels {
		levels = append(levels, lv)
	}
	sort.Ints(levels)
	return levels
}
