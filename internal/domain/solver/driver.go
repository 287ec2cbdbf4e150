package solver

import "github.com/andrescamacho/craftsolver-go/internal/domain/crafting"

// driverSlot is one Driver cell. The zero value is the base case: no progress,
// no action.
type driverSlot struct {
	progress uint16
	steps    uint16
	action   actionCode
}

// offer keeps the candidate if it adds more progress, or the same progress in
// fewer steps. Later equal candidates lose.
func (s *driverSlot) offer(progress, steps int, a crafting.Action) {
	p, st := uint16(progress), uint16(steps)
	if p > s.progress || (p == s.progress && st < s.steps) {
		*s = driverSlot{progress: p, steps: st, action: encodeAction(a)}
	}
}

// Driver tabulates the maximum progress reachable from every reduced state
// (durability, craft points, veneration, muscle memory, manipulation,
// waste not) using a progress-oriented action subset.
type Driver struct {
	base  crafting.Status
	table *denseTable[driverSlot]
}

// NewDriver allocates an empty table sized by the status' recipe durability
// and crafter craft points.
func NewDriver(s crafting.Status) *Driver {
	return &Driver{
		base: probeBase(s),
		table: newDenseTable[driverSlot]([axes]int{
			s.Recipe.Durability + 1,
			s.Attributes.CraftPoints + 1,
			crafting.MaxVeneration + 1,
			crafting.MaxMuscleMemory + 1,
			crafting.MaxManipulation + 1,
			crafting.MaxWasteNot + 1,
		}),
	}
}

func driverCoords(s *crafting.Status) coords {
	return coords{
		s.Durability,
		s.CraftPoints,
		s.Buffs.Veneration,
		s.Buffs.MuscleMemory,
		s.Buffs.Manipulation,
		s.Buffs.WasteNot,
	}
}

// Init fills the table. Craft points and durability ascend in the outer loops
// so every successor a candidate looks up is already final.
func (d *Driver) Init(allowed []crafting.Action) {
	timers := timerGrid([4]int{
		crafting.MaxVeneration,
		crafting.MaxMuscleMemory,
		crafting.MaxManipulation,
		crafting.MaxWasteNot,
	})
	s := d.base
	for cp := 0; cp <= d.base.Attributes.CraftPoints; cp++ {
		s.CraftPoints = cp
		for du := 1; du <= d.base.Recipe.Durability; du++ {
			s.Durability = du
			for _, t := range timers {
				s.Buffs.Veneration = t[0]
				s.Buffs.MuscleMemory = t[1]
				s.Buffs.Manipulation = t[2]
				s.Buffs.WasteNot = t[3]
				d.fill(&s, allowed)
			}
		}
	}
}

func (d *Driver) fill(s *crafting.Status, allowed []crafting.Action) {
	slot, ok := d.table.at(driverCoords(s))
	if !ok {
		return
	}
	difficulty := s.Recipe.Difficulty
	for _, a := range allowed {
		if s.IsActionAllowed(a) != nil {
			continue
		}
		next := *s
		next.CastAction(a)
		progress, steps := next.Progress, 1
		// a broken item cannot continue; its own progress is final
		if next.Durability > 0 {
			follow := d.cell(&next)
			progress += int(follow.progress)
			steps += int(follow.steps)
			if progress > difficulty {
				progress = difficulty
			}
		}
		slot.offer(progress, steps, a)
	}
}

func (d *Driver) cell(s *crafting.Status) driverSlot {
	if slot, ok := d.table.at(driverCoords(s)); ok {
		return *slot
	}
	return driverSlot{}
}

// Read returns the tabulated cell for the status' reduced coordinates.
// Coordinates outside the table read as the empty base case.
func (d *Driver) Read(s *crafting.Status) Slot {
	c := d.cell(s)
	return newSlot(int(c.progress), int(c.steps), c.action)
}

// ReadAll returns the progress reached and the action sequence that reaches
// it from s, using the two-phase read-out.
func (d *Driver) ReadAll(s crafting.Status) (int, []crafting.Action) {
	remaining := s.Recipe.Difficulty - s.Progress
	if remaining < 0 {
		remaining = 0
	}
	working := allocate(d, s, remaining)
	actions := playback(d, &working)
	return working.Progress, actions
}

// Cells is the number of tabulated reduced states.
func (d *Driver) Cells() int {
	return d.table.len()
}
