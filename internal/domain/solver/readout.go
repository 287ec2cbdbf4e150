package solver

import "github.com/andrescamacho/craftsolver-go/internal/domain/crafting"

// reader is a tabulated value function over reduced states.
type reader interface {
	Read(s *crafting.Status) Slot
}

// allocate is phase one of the read-out. Holding the buff coordinates at the
// real status, it scans every smaller craft point and durability budget and
// picks the one that reaches at least the best capped value in strictly
// fewer steps. The returned status carries the chosen budget.
func allocate(t reader, s crafting.Status, valueCap int) crafting.Status {
	capped := func(v int) int {
		if v > valueCap {
			return valueCap
		}
		return v
	}

	current := t.Read(&s)
	bestValue, bestSteps := capped(current.Value), current.Steps
	bestCP, bestDurability := s.CraftPoints, s.Durability

	probe := s
	for cp := 0; cp <= s.CraftPoints; cp++ {
		probe.CraftPoints = cp
		for du := 1; du <= s.Durability; du++ {
			probe.Durability = du
			slot := t.Read(&probe)
			if v := capped(slot.Value); v >= bestValue && slot.Steps < bestSteps {
				bestValue, bestSteps = v, slot.Steps
				bestCP, bestDurability = cp, du
			}
		}
	}

	s.CraftPoints = bestCP
	s.Durability = bestDurability
	return s
}

// playback is phase two: follow the table from working, casting each named
// action, until a cell names none. It also stops if the craft can no longer
// take the named action.
func playback(t reader, working *crafting.Status) []crafting.Action {
	var actions []crafting.Action
	for {
		slot := t.Read(working)
		if !slot.HasAction {
			return actions
		}
		if working.IsActionAllowed(slot.Action) != nil {
			return actions
		}
		working.CastAction(slot.Action)
		actions = append(actions, slot.Action)
	}
}
