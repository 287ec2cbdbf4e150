package crafting

import (
	"fmt"
	"strings"
)

// Action is one crafter skill. The set is fixed by the game rules.
type Action int

const (
	BasicSynthesis Action = iota
	CarefulSynthesis
	Groundwork
	PrudentSynthesis
	MuscleMemory
	DelicateSynthesis
	BasicTouch
	StandardTouch
	AdvancedTouch
	PrudentTouch
	PreparatoryTouch
	ByregotsBlessing
	Reflect
	TrainedFinesse
	Veneration
	Innovation
	GreatStrides
	WasteNot
	WasteNotII
	Manipulation
	MastersMend
	Observe

	actionCount
)

// actionSpec holds the static per-action numbers
type actionSpec struct {
	name        string
	level       int
	craftPoints int
	durability  int
}

var actionSpecs = [actionCount]actionSpec{
	BasicSynthesis:    {name: "basic_synthesis", level: 1, craftPoints: 0, durability: 10},
	CarefulSynthesis:  {name: "careful_synthesis", level: 62, craftPoints: 7, durability: 10},
	Groundwork:        {name: "groundwork", level: 72, craftPoints: 18, durability: 20},
	PrudentSynthesis:  {name: "prudent_synthesis", level: 88, craftPoints: 18, durability: 5},
	MuscleMemory:      {name: "muscle_memory", level: 54, craftPoints: 6, durability: 10},
	DelicateSynthesis: {name: "delicate_synthesis", level: 76, craftPoints: 32, durability: 10},
	BasicTouch:        {name: "basic_touch", level: 5, craftPoints: 18, durability: 10},
	StandardTouch:     {name: "standard_touch", level: 18, craftPoints: 32, durability: 10},
	AdvancedTouch:     {name: "advanced_touch", level: 84, craftPoints: 46, durability: 10},
	PrudentTouch:      {name: "prudent_touch", level: 66, craftPoints: 25, durability: 5},
	PreparatoryTouch:  {name: "preparatory_touch", level: 71, craftPoints: 40, durability: 20},
	ByregotsBlessing:  {name: "byregots_blessing", level: 50, craftPoints: 24, durability: 10},
	Reflect:           {name: "reflect", level: 69, craftPoints: 6, durability: 10},
	TrainedFinesse:    {name: "trained_finesse", level: 90, craftPoints: 32, durability: 0},
	Veneration:        {name: "veneration", level: 15, craftPoints: 18, durability: 0},
	Innovation:        {name: "innovation", level: 26, craftPoints: 18, durability: 0},
	GreatStrides:      {name: "great_strides", level: 21, craftPoints: 32, durability: 0},
	WasteNot:          {name: "waste_not", level: 15, craftPoints: 56, durability: 0},
	WasteNotII:        {name: "waste_not_ii", level: 47, craftPoints: 98, durability: 0},
	Manipulation:      {name: "manipulation", level: 65, craftPoints: 96, durability: 0},
	MastersMend:       {name: "masters_mend", level: 7, craftPoints: 88, durability: 0},
	Observe:           {name: "observe", level: 13, craftPoints: 7, durability: 0},
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, actionCount)
	for a := Action(0); a < actionCount; a++ {
		m[actionSpecs[a].name] = a
	}
	return m
}()

// AllActions returns every action in declaration order.
func AllActions() []Action {
	all := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		all = append(all, a)
	}
	return all
}

// ActionNames returns the canonical names of every action.
func ActionNames() []string {
	names := make([]string, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		names = append(names, actionSpecs[a].name)
	}
	return names
}

// Valid reports whether a names a known action
func (a Action) Valid() bool {
	return a >= 0 && a < actionCount
}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionSpecs[a].name
}

// Level is the crafter level required to use the action.
func (a Action) Level() int { return actionSpecs[a].level }

// CraftPoints is the craft point cost of the action.
func (a Action) CraftPoints() int { return actionSpecs[a].craftPoints }

// Durability is the undiscounted durability cost of the action.
func (a Action) Durability() int { return actionSpecs[a].durability }

// IsSynthesis reports whether the action adds progress.
func (a Action) IsSynthesis() bool {
	switch a {
	case BasicSynthesis, CarefulSynthesis, Groundwork, PrudentSynthesis, MuscleMemory, DelicateSynthesis:
		return true
	}
	return false
}

// IsOpener reports whether the action is only legal on the first step.
func (a Action) IsOpener() bool {
	return a == MuscleMemory || a == Reflect
}

// IsTouch reports whether the action adds quality.
func (a Action) IsTouch() bool {
	switch a {
	case BasicTouch, StandardTouch, AdvancedTouch, PrudentTouch, PreparatoryTouch,
		ByregotsBlessing, Reflect, TrainedFinesse, DelicateSynthesis:
		return true
	}
	return false
}

// MarshalText encodes the action by name.
func (a Action) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid action %d", int(a))
	}
	return []byte(actionSpecs[a].name), nil
}

// UnmarshalText decodes an action name.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAction resolves a canonical action name. Matching ignores case and
// treats spaces and dashes as underscores.
func ParseAction(name string) (Action, error) {
	key := normalizeActionName(name)
	if a, ok := actionsByName[key]; ok {
		return a, nil
	}
	suggestion, _ := SuggestAction(name)
	return 0, &ErrUnknownAction{Name: name, Suggestion: suggestion}
}

// ParseActions resolves a list of action names, stopping at the first unknown one.
func ParseActions(names []string) ([]Action, error) {
	actions := make([]Action, 0, len(names))
	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func normalizeActionName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "'", "")
	return key
}
