package crafting

// Upper bounds of every buff counter. Casting a buff sets its timer to the
// bound; each following action ticks it down by one.
const (
	MaxInnerQuiet   = 10
	MaxInnovation   = 4
	MaxVeneration   = 4
	MaxGreatStrides = 3
	MaxMuscleMemory = 5
	MaxManipulation = 8
	MaxWasteNot     = 8

	// wasteNotShort is the Waste Not timer; Waste Not II uses MaxWasteNot.
	wasteNotShort = 4

	manipulationRestore = 5
	mastersMendRestore  = 30
)

// Buffs holds the status-effect timers and stacks of a craft.
type Buffs struct {
	InnerQuiet   int `json:"inner_quiet" validate:"min=0,max=10"`
	Innovation   int `json:"innovation" validate:"min=0,max=4"`
	Veneration   int `json:"veneration" validate:"min=0,max=4"`
	GreatStrides int `json:"great_strides" validate:"min=0,max=3"`
	MuscleMemory int `json:"muscle_memory" validate:"min=0,max=5"`
	Manipulation int `json:"manipulation" validate:"min=0,max=8"`
	WasteNot     int `json:"waste_not" validate:"min=0,max=8"`
}

// tick counts every timed buff down by one action
func (b *Buffs) tick() {
	for _, timer := range []*int{
		&b.Innovation, &b.Veneration, &b.GreatStrides,
		&b.MuscleMemory, &b.Manipulation, &b.WasteNot,
	} {
		if *timer > 0 {
			*timer--
		}
	}
}

func (b *Buffs) addInnerQuiet(stacks int) {
	b.InnerQuiet += stacks
	if b.InnerQuiet > MaxInnerQuiet {
		b.InnerQuiet = MaxInnerQuiet
	}
}
