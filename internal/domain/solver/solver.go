package solver

import "github.com/andrescamacho/craftsolver-go/internal/domain/crafting"

type solverSlot struct {
	quality uint32
	steps   uint16
	action  actionCode
}

func (s *solverSlot) offer(quality, steps int, a crafting.Action) {
	q, st := uint32(quality), uint16(steps)
	if q > s.quality || (q == s.quality && st < s.steps) {
		*s = solverSlot{quality: q, steps: st, action: encodeAction(a)}
	}
}

// Solver tabulates the maximum quality reachable from every reduced state
// (durability, craft points, inner quiet, innovation, manipulation, waste
// not). A candidate action is only kept when the Driver can still finish the
// craft from its successor.
type Solver struct {
	driver *Driver
	base   crafting.Status
	table  *denseTable[solverSlot]
}

// NewSolver allocates an empty quality table on top of a tabulated Driver.
func NewSolver(driver *Driver) *Solver {
	base := driver.base
	return &Solver{
		driver: driver,
		base:   base,
		table: newDenseTable[solverSlot]([axes]int{
			base.Recipe.Durability + 1,
			base.Attributes.CraftPoints + 1,
			crafting.MaxInnerQuiet + 1,
			crafting.MaxInnovation + 1,
			crafting.MaxManipulation + 1,
			crafting.MaxWasteNot + 1,
		}),
	}
}

// Driver returns the progress table this solver finishes with.
func (s *Solver) Driver() *Driver {
	return s.driver
}

func solverCoords(s *crafting.Status) coords {
	return coords{
		s.Durability,
		s.CraftPoints,
		s.Buffs.InnerQuiet,
		s.Buffs.Innovation,
		s.Buffs.Manipulation,
		s.Buffs.WasteNot,
	}
}

// Init fills the quality table in the same dependency order as the Driver.
func (s *Solver) Init(allowed []crafting.Action) {
	timers := timerGrid([4]int{
		crafting.MaxInnerQuiet,
		crafting.MaxInnovation,
		crafting.MaxManipulation,
		crafting.MaxWasteNot,
	})
	probe := s.base
	for cp := 0; cp <= s.base.Attributes.CraftPoints; cp++ {
		probe.CraftPoints = cp
		for du := 1; du <= s.base.Recipe.Durability; du++ {
			probe.Durability = du
			for _, t := range timers {
				probe.Buffs.InnerQuiet = t[0]
				probe.Buffs.Innovation = t[1]
				probe.Buffs.Manipulation = t[2]
				probe.Buffs.WasteNot = t[3]
				s.fill(&probe, allowed)
			}
		}
	}
}

func (s *Solver) fill(probe *crafting.Status, allowed []crafting.Action) {
	slot, ok := s.table.at(solverCoords(probe))
	if !ok {
		return
	}
	difficulty := probe.Recipe.Difficulty
	for _, a := range allowed {
		if probe.IsActionAllowed(a) != nil {
			continue
		}
		next := *probe
		next.CastAction(a)
		if s.driver.Read(&next).Value != difficulty {
			continue
		}
		follow := s.cell(&next)
		slot.offer(next.Quality+int(follow.quality), 1+int(follow.steps), a)
	}
}

func (s *Solver) cell(st *crafting.Status) solverSlot {
	if slot, ok := s.table.at(solverCoords(st)); ok {
		return *slot
	}
	return solverSlot{}
}

// Read returns the tabulated cell for the status' reduced coordinates.
func (s *Solver) Read(st *crafting.Status) Slot {
	c := s.cell(st)
	return newSlot(int(c.quality), int(c.steps), c.action)
}

// ReadAll returns the quality reached and the full rotation from st: the
// quality moves, then the Driver's finishing moves from where they end.
func (s *Solver) ReadAll(st crafting.Status) (int, []crafting.Action) {
	remaining := st.Recipe.Quality - st.Quality
	if remaining < 0 {
		remaining = 0
	}
	working := allocate(s, st, remaining)
	actions := playback(s, &working)
	_, finishing := s.driver.ReadAll(working)
	return working.Quality, append(actions, finishing...)
}

// Cells is the number of tabulated reduced states.
func (s *Solver) Cells() int {
	return s.table.len()
}

// Stats summarizes the size of a built table pair.
type Stats struct {
	DriverCells int
	SolverCells int
}

// Stats reports the cell counts of the Solver and its Driver.
func (s *Solver) Stats() Stats {
	return Stats{DriverCells: s.driver.Cells(), SolverCells: s.Cells()}
}
