package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

func TestDenseTable_AddressesEveryCellOnce(t *testing.T) {
	table := newDenseTable[int]([axes]int{2, 3, 1, 2, 1, 2})
	require.Equal(t, 24, table.len())

	n := 0
	for du := 0; du < 2; du++ {
		for cp := 0; cp < 3; cp++ {
			for a := 0; a < 2; a++ {
				for b := 0; b < 2; b++ {
					cell, ok := table.at(coords{du, cp, 0, a, 0, b})
					require.True(t, ok)
					assert.Zero(t, *cell, "cell visited twice")
					n++
					*cell = n
				}
			}
		}
	}
	assert.Equal(t, 24, n)
}

func TestDenseTable_OutOfBounds(t *testing.T) {
	table := newDenseTable[int]([axes]int{2, 2, 2, 2, 2, 2})

	_, ok := table.at(coords{2, 0, 0, 0, 0, 0})
	assert.False(t, ok)
	_, ok = table.at(coords{0, -1, 0, 0, 0, 0})
	assert.False(t, ok)
	_, ok = table.at(coords{1, 1, 1, 1, 1, 1})
	assert.True(t, ok)
}

func TestTimerGrid(t *testing.T) {
	grid := timerGrid([4]int{1, 0, 2, 0})

	assert.Equal(t, [][4]int{
		{0, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 2, 0},
		{1, 0, 0, 0},
		{1, 0, 1, 0},
		{1, 0, 2, 0},
	}, grid)
}

func TestActionCode_RoundTrip(t *testing.T) {
	_, ok := actionCode(0).decode()
	assert.False(t, ok)

	for _, a := range crafting.AllActions() {
		got, ok := encodeAction(a).decode()
		require.True(t, ok)
		assert.Equal(t, a, got)
	}
}

func TestDriverSlot_Offer(t *testing.T) {
	var slot driverSlot

	slot.offer(50, 2, crafting.BasicSynthesis)
	assert.Equal(t, uint16(50), slot.progress)

	// same value, same steps: first found stays
	slot.offer(50, 2, crafting.CarefulSynthesis)
	a, _ := slot.action.decode()
	assert.Equal(t, crafting.BasicSynthesis, a)

	// same value, fewer steps wins
	slot.offer(50, 1, crafting.CarefulSynthesis)
	a, _ = slot.action.decode()
	assert.Equal(t, crafting.CarefulSynthesis, a)
	assert.Equal(t, uint16(1), slot.steps)

	// lower value never wins, even if shorter
	slot.offer(40, 0, crafting.Groundwork)
	a, _ = slot.action.decode()
	assert.Equal(t, crafting.CarefulSynthesis, a)

	// higher value wins regardless of steps
	slot.offer(60, 9, crafting.Groundwork)
	a, _ = slot.action.decode()
	assert.Equal(t, crafting.Groundwork, a)
}

func TestSolverSlot_Offer(t *testing.T) {
	var slot solverSlot

	slot.offer(0, 1, crafting.Observe)
	_, ok := slot.action.decode()
	assert.False(t, ok, "zero value in one step does not beat the empty base case")

	slot.offer(120, 3, crafting.BasicTouch)
	slot.offer(120, 3, crafting.StandardTouch)
	a, _ := slot.action.decode()
	assert.Equal(t, crafting.BasicTouch, a)
	assert.Equal(t, uint32(120), slot.quality)
}

func TestProbeBase_SkipsOpener(t *testing.T) {
	s := crafting.NewStatus(
		crafting.Attributes{Level: 90, Craftsmanship: 100, Control: 100, CraftPoints: 10},
		crafting.Recipe{Level: 1, JobLevel: 1, Difficulty: 10, Quality: 10, Durability: 10,
			ProgressDivider: 50, QualityDivider: 30, ProgressModifier: 100, QualityModifier: 100},
	)
	s.Progress = 7
	s.Quality = 3

	base := probeBase(s)

	assert.Zero(t, base.Progress)
	assert.Zero(t, base.Quality)
	assert.Equal(t, 1, base.Step)
	assert.Error(t, base.IsActionAllowed(crafting.MuscleMemory))
	assert.Error(t, base.IsActionAllowed(crafting.Reflect))
}
