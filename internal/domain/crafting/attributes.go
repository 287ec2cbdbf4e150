package crafting

// Attributes are the crafter's stats. The struct is comparable and takes part
// in solver identity together with the recipe.
type Attributes struct {
	Level         int `json:"level" validate:"min=1,max=100"`
	Craftsmanship int `json:"craftsmanship" validate:"min=1"`
	Control       int `json:"control" validate:"min=1"`
	CraftPoints   int `json:"craft_points" validate:"min=0,max=1000"`
}
