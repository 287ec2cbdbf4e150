package solver

import (
	"fmt"

	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

// Key identifies one crafting problem. Two statuses with equal attributes and
// recipe share their tables regardless of progress, quality or buffs.
type Key struct {
	Attributes crafting.Attributes
	Recipe     crafting.Recipe
}

// KeyOf derives the key of a status.
func KeyOf(s crafting.Status) Key {
	return Key{Attributes: s.Attributes, Recipe: s.Recipe}
}

func (k Key) String() string {
	return fmt.Sprintf("rlv%d/d%d/q%d/dur%d@lv%d/cms%d/ctl%d/cp%d",
		k.Recipe.Level, k.Recipe.Difficulty, k.Recipe.Quality, k.Recipe.Durability,
		k.Attributes.Level, k.Attributes.Craftsmanship, k.Attributes.Control, k.Attributes.CraftPoints)
}
