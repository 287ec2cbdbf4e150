package crafting

// recipeLevel is one row of the recipe level table. Recipe factors are
// percentages applied to difficulty, quality and durability.
type recipeLevel struct {
	jobLevel         int
	difficulty       int
	quality          int
	durability       int
	progressDivider  int
	qualityDivider   int
	progressModifier int
	qualityModifier  int
}

var recipeLevels = map[int]recipeLevel{
	1:   {jobLevel: 1, difficulty: 9, quality: 80, durability: 60, progressDivider: 50, qualityDivider: 30, progressModifier: 100, qualityModifier: 100},
	5:   {jobLevel: 5, difficulty: 22, quality: 192, durability: 60, progressDivider: 50, qualityDivider: 30, progressModifier: 100, qualityModifier: 100},
	10:  {jobLevel: 10, difficulty: 31, quality: 351, durability: 60, progressDivider: 50, qualityDivider: 30, progressModifier: 100, qualityModifier: 100},
	15:  {jobLevel: 15, difficulty: 45, quality: 504, durability: 60, progressDivider: 50, qualityDivider: 30, progressModifier: 100, qualityModifier: 100},
	20:  {jobLevel: 20, difficulty: 62, quality: 681, durability: 60, progressDivider: 50, qualityDivider: 30, progressModifier: 100, qualityModifier: 100},
	30:  {jobLevel: 30, difficulty: 102, quality: 1103, durability: 70, progressDivider: 50, qualityDivider: 30, progressModifier: 100, qualityModifier: 100},
	40:  {jobLevel: 40, difficulty: 149, quality: 1618, durability: 70, progressDivider: 50, qualityDivider: 30, progressModifier: 100, qualityModifier: 100},
	50:  {jobLevel: 50, difficulty: 212, quality: 2237, durability: 70, progressDivider: 50, qualityDivider: 30, progressModifier: 100, qualityModifier: 100},
	115: {jobLevel: 50, difficulty: 445, quality: 4490, durability: 80, progressDivider: 50, qualityDivider: 30, progressModifier: 100, qualityModifier: 100},
	160: {jobLevel: 60, difficulty: 653, quality: 5260, durability: 80, progressDivider: 56, qualityDivider: 38, progressModifier: 100, qualityModifier: 100},
	290: {jobLevel: 70, difficulty: 1196, quality: 9366, durability: 80, progressDivider: 62, qualityDivider: 46, progressModifier: 100, qualityModifier: 100},
	430: {jobLevel: 80, difficulty: 2000, quality: 13600, durability: 80, progressDivider: 110, qualityDivider: 90, progressModifier: 100, qualityModifier: 100},
	517: {jobLevel: 80, difficulty: 3500, quality: 22000, durability: 80, progressDivider: 121, qualityDivider: 105, progressModifier: 100, qualityModifier: 100},
	560: {jobLevel: 90, difficulty: 3500, quality: 7200, durability: 80, progressDivider: 130, qualityDivider: 115, progressModifier: 90, qualityModifier: 80},
	580: {jobLevel: 90, difficulty: 3900, quality: 10920, durability: 70, progressDivider: 130, qualityDivider: 115, progressModifier: 90, qualityModifier: 80},
	610: {jobLevel: 90, difficulty: 5060, quality: 12628, durability: 70, progressDivider: 130, qualityDivider: 115, progressModifier: 80, qualityModifier: 70},
	640: {jobLevel: 90, difficulty: 6600, quality: 14040, durability: 70, progressDivider: 130, qualityDivider: 115, progressModifier: 80, qualityModifier: 70},
}
