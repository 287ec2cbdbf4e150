package solver

import "github.com/andrescamacho/craftsolver-go/internal/domain/crafting"

// axes is the number of coordinates of a reduced state: durability,
// craft points and four bounded buff counters.
const axes = 6

// coords addresses one cell. Axis 0 is durability, axis 1 craft points.
type coords [axes]int

// denseTable is a flat row-major buffer over a bounded six-axis grid.
type denseTable[T any] struct {
	extent [axes]int
	stride [axes]int
	cells  []T
}

func newDenseTable[T any](extent [axes]int) *denseTable[T] {
	t := &denseTable[T]{extent: extent}
	size := 1
	for i := axes - 1; i >= 0; i-- {
		t.stride[i] = size
		size *= extent[i]
	}
	t.cells = make([]T, size)
	return t
}

// at returns the cell for c, or false when any coordinate is out of bounds.
func (t *denseTable[T]) at(c coords) (*T, bool) {
	offset := 0
	for i, v := range c {
		if v < 0 || v >= t.extent[i] {
			return nil, false
		}
		offset += v * t.stride[i]
	}
	return &t.cells[offset], true
}

func (t *denseTable[T]) len() int {
	return len(t.cells)
}

// timerGrid enumerates every combination of four bounded counters, each
// ascending from zero, last axis fastest.
func timerGrid(bounds [4]int) [][4]int {
	size := 1
	for _, b := range bounds {
		size *= b + 1
	}
	grid := make([][4]int, 0, size)
	var t [4]int
	for t[0] = 0; t[0] <= bounds[0]; t[0]++ {
		for t[1] = 0; t[1] <= bounds[1]; t[1]++ {
			for t[2] = 0; t[2] <= bounds[2]; t[2]++ {
				for t[3] = 0; t[3] <= bounds[3]; t[3]++ {
					grid = append(grid, t)
				}
			}
		}
	}
	return grid
}

// actionCode stores an optional action in one byte; zero means none.
type actionCode uint8

func encodeAction(a crafting.Action) actionCode {
	return actionCode(a + 1)
}

func (c actionCode) decode() (crafting.Action, bool) {
	if c == 0 {
		return 0, false
	}
	return crafting.Action(c - 1), true
}

// Slot is the exported view of one table cell.
type Slot struct {
	// Value is progress for the Driver and quality for the Solver.
	Value int
	// Steps is the minimal action count achieving Value.
	Steps int
	// Action is the first action of the best continuation; valid when HasAction.
	Action    crafting.Action
	HasAction bool
}

func newSlot(value, steps int, code actionCode) Slot {
	a, ok := code.decode()
	return Slot{Value: value, Steps: steps, Action: a, HasAction: ok}
}

// probeBase is the template every tabulated state is derived from. Progress
// and quality start at zero so table values are pure gains, and the step
// counter is past the opener so first-step-only actions are never tabulated.
func probeBase(s crafting.Status) crafting.Status {
	base := crafting.NewStatus(s.Attributes, s.Recipe)
	base.Step = 1
	return base
}
