package crafting

// Status is the full state of a craft in progress.
type Status struct {
	Attributes  Attributes `json:"attributes"`
	Recipe      Recipe     `json:"recipe"`
	Buffs       Buffs      `json:"buffs"`
	Durability  int        `json:"durability" validate:"min=0"`
	CraftPoints int        `json:"craft_points" validate:"min=0"`
	Progress    int        `json:"progress" validate:"min=0"`
	Quality     int        `json:"quality" validate:"min=0"`
	Step        int        `json:"step" validate:"min=0"`
}

// NewStatus starts a craft with full durability and craft points.
func NewStatus(attrs Attributes, recipe Recipe) Status {
	return Status{
		Attributes:  attrs,
		Recipe:      recipe,
		Durability:  recipe.Durability,
		CraftPoints: attrs.CraftPoints,
	}
}

// IsFinished reports whether no further action can be taken.
func (s *Status) IsFinished() bool {
	return s.Progress >= s.Recipe.Difficulty || s.Durability <= 0
}

// IsActionAllowed checks the action against the current status.
func (s *Status) IsActionAllowed(a Action) error {
	if !a.Valid() {
		return &ErrUnknownAction{Name: a.String()}
	}
	reject := func(reason CastActionReason) error {
		return &CastActionError{Action: a, Reason: reason}
	}
	if s.IsFinished() {
		return reject(ReasonCraftFinished)
	}
	if s.Attributes.Level < a.Level() {
		return reject(ReasonLevelTooLow)
	}
	if s.CraftPoints < a.CraftPoints() {
		return reject(ReasonCraftPointsNotEnough)
	}
	if a.IsOpener() && s.Step != 0 {
		return reject(ReasonOnlyFirstStep)
	}
	switch a {
	case ByregotsBlessing:
		if s.Buffs.InnerQuiet == 0 {
			return reject(ReasonRequireInnerQuiet)
		}
	case TrainedFinesse:
		if s.Buffs.InnerQuiet < MaxInnerQuiet {
			return reject(ReasonRequireInnerQuiet10)
		}
	case PrudentSynthesis, PrudentTouch:
		if s.Buffs.WasteNot > 0 {
			return reject(ReasonWasteNotActive)
		}
	}
	return nil
}

// CastAction applies the action. Callers check IsActionAllowed first; the
// rules are not re-validated here.
func (s *Status) CastAction(a Action) {
	durabilityCost := a.Durability()
	if s.Buffs.WasteNot > 0 {
		durabilityCost = (durabilityCost + 1) / 2
	}

	if eff := s.progressEfficiency(a, durabilityCost); eff > 0 {
		s.Progress += s.progressGain(eff)
		if s.Progress > s.Recipe.Difficulty {
			s.Progress = s.Recipe.Difficulty
		}
		s.Buffs.MuscleMemory = 0
	}
	if eff := s.qualityEfficiency(a); eff > 0 {
		s.Quality += s.qualityGain(eff)
		if s.Quality > s.Recipe.Quality {
			s.Quality = s.Recipe.Quality
		}
		s.Buffs.GreatStrides = 0
		switch a {
		case ByregotsBlessing:
			s.Buffs.InnerQuiet = 0
		case PreparatoryTouch, Reflect:
			s.Buffs.addInnerQuiet(2)
		case TrainedFinesse:
		default:
			s.Buffs.addInnerQuiet(1)
		}
	}

	s.CraftPoints -= a.CraftPoints()
	s.Durability -= durabilityCost
	if s.Durability < 0 {
		s.Durability = 0
	}
	if s.Buffs.Manipulation > 0 && a != Manipulation && s.Durability > 0 {
		s.restoreDurability(manipulationRestore)
	}

	s.Buffs.tick()

	switch a {
	case MuscleMemory:
		s.Buffs.MuscleMemory = MaxMuscleMemory
	case Veneration:
		s.Buffs.Veneration = MaxVeneration
	case Innovation:
		s.Buffs.Innovation = MaxInnovation
	case GreatStrides:
		s.Buffs.GreatStrides = MaxGreatStrides
	case WasteNot:
		s.Buffs.WasteNot = wasteNotShort
	case WasteNotII:
		s.Buffs.WasteNot = MaxWasteNot
	case Manipulation:
		s.Buffs.Manipulation = MaxManipulation
	case MastersMend:
		s.restoreDurability(mastersMendRestore)
	}

	s.Step++
}

func (s *Status) restoreDurability(amount int) {
	s.Durability += amount
	if s.Durability > s.Recipe.Durability {
		s.Durability = s.Recipe.Durability
	}
}

// BaseProgress is the progress of a 100% efficiency synthesis without buffs.
func (s *Status) BaseProgress() int {
	base := s.Attributes.Craftsmanship*10/s.Recipe.ProgressDivider + 2
	if s.Attributes.Level <= s.Recipe.JobLevel {
		base = base * s.Recipe.ProgressModifier / 100
	}
	return base
}

// BaseQuality is the quality of a 100% efficiency touch without buffs.
func (s *Status) BaseQuality() int {
	base := s.Attributes.Control*10/s.Recipe.QualityDivider + 35
	if s.Attributes.Level <= s.Recipe.JobLevel {
		base = base * s.Recipe.QualityModifier / 100
	}
	return base
}

func (s *Status) progressGain(efficiency int) int {
	bonus := 100
	if s.Buffs.Veneration > 0 {
		bonus += 50
	}
	if s.Buffs.MuscleMemory > 0 {
		bonus += 100
	}
	return s.BaseProgress() * efficiency * bonus / 10000
}

func (s *Status) qualityGain(efficiency int) int {
	bonus := 100
	if s.Buffs.Innovation > 0 {
		bonus += 50
	}
	if s.Buffs.GreatStrides > 0 {
		bonus += 100
	}
	stacks := 10 + s.Buffs.InnerQuiet
	return s.BaseQuality() * efficiency * stacks * bonus / 100000
}

// progressEfficiency is the synthesis potency in percent, 0 for non-synthesis
func (s *Status) progressEfficiency(a Action, durabilityCost int) int {
	level := s.Attributes.Level
	switch a {
	case BasicSynthesis:
		if level >= 31 {
			return 120
		}
		return 100
	case CarefulSynthesis:
		if level >= 82 {
			return 180
		}
		return 150
	case Groundwork:
		eff := 300
		if level >= 86 {
			eff = 360
		}
		if s.Durability < durabilityCost {
			eff /= 2
		}
		return eff
	case PrudentSynthesis:
		return 180
	case MuscleMemory:
		return 300
	case DelicateSynthesis:
		return 100
	}
	return 0
}

// qualityEfficiency is the touch potency in percent, 0 for non-touch
func (s *Status) qualityEfficiency(a Action) int {
	switch a {
	case BasicTouch, PrudentTouch, Reflect, TrainedFinesse, DelicateSynthesis:
		return 100
	case StandardTouch:
		return 125
	case AdvancedTouch:
		return 150
	case PreparatoryTouch:
		return 200
	case ByregotsBlessing:
		return 100 + 20*s.Buffs.InnerQuiet
	}
	return 0
}
