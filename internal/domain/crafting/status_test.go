package crafting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

func testRecipe() crafting.Recipe {
	return crafting.Recipe{
		Level:            1,
		JobLevel:         1,
		Difficulty:       100,
		Quality:          1000,
		Durability:       40,
		ProgressDivider:  50,
		QualityDivider:   30,
		ProgressModifier: 100,
		QualityModifier:  100,
	}
}

func testAttributes() crafting.Attributes {
	return crafting.Attributes{Level: 90, Craftsmanship: 200, Control: 200, CraftPoints: 200}
}

func TestNewStatus_StartsWithFullResources(t *testing.T) {
	s := crafting.NewStatus(testAttributes(), testRecipe())

	assert.Equal(t, 40, s.Durability)
	assert.Equal(t, 200, s.CraftPoints)
	assert.Equal(t, 0, s.Progress)
	assert.Equal(t, 0, s.Quality)
	assert.Equal(t, 0, s.Step)
	assert.False(t, s.IsFinished())
}

func TestCastAction_BasicSynthesis(t *testing.T) {
	s := crafting.NewStatus(testAttributes(), testRecipe())

	require.NoError(t, s.IsActionAllowed(crafting.BasicSynthesis))
	s.CastAction(crafting.BasicSynthesis)

	assert.Equal(t, 42, s.BaseProgress())
	assert.Equal(t, 50, s.Progress)
	assert.Equal(t, 30, s.Durability)
	assert.Equal(t, 200, s.CraftPoints)
	assert.Equal(t, 1, s.Step)
}

func TestCastAction_ProgressIsCappedAtDifficulty(t *testing.T) {
	s := crafting.NewStatus(testAttributes(), testRecipe())

	for i := 0; i < 3; i++ {
		s.CastAction(crafting.BasicSynthesis)
	}

	assert.Equal(t, 100, s.Progress)
	assert.True(t, s.IsFinished())
	err := s.IsActionAllowed(crafting.BasicTouch)
	var castErr *crafting.CastActionError
	require.ErrorAs(t, err, &castErr)
	assert.Equal(t, crafting.ReasonCraftFinished, castErr.Reason)
}

func TestCastAction_TouchBuildsInnerQuiet(t *testing.T) {
	s := crafting.NewStatus(testAttributes(), testRecipe())

	s.CastAction(crafting.BasicTouch)
	assert.Equal(t, 101, s.Quality)
	assert.Equal(t, 1, s.Buffs.InnerQuiet)
	assert.Equal(t, 182, s.CraftPoints)

	s.CastAction(crafting.BasicTouch)
	assert.Equal(t, 212, s.Quality)
	assert.Equal(t, 2, s.Buffs.InnerQuiet)
}

func TestCastAction_ByregotsBlessingConsumesInnerQuiet(t *testing.T) {
	s := crafting.NewStatus(testAttributes(), testRecipe())
	s.Buffs.InnerQuiet = 5

	require.NoError(t, s.IsActionAllowed(crafting.ByregotsBlessing))
	s.CastAction(crafting.ByregotsBlessing)

	// 101 * 200% * 150%
	assert.Equal(t, 303, s.Quality)
	assert.Equal(t, 0, s.Buffs.InnerQuiet)
}

func TestCastAction_VenerationBoostsFollowingSynthesis(t *testing.T) {
	s := crafting.NewStatus(testAttributes(), testRecipe())

	s.CastAction(crafting.Veneration)
	assert.Equal(t, crafting.MaxVeneration, s.Buffs.Veneration)
	assert.Equal(t, 182, s.CraftPoints)
	assert.Equal(t, 40, s.Durability)

	s.CastAction(crafting.BasicSynthesis)
	assert.Equal(t, 75, s.Progress)
	assert.Equal(t, crafting.MaxVeneration-1, s.Buffs.Veneration)
}

func TestCastAction_WasteNotHalvesDurabilityCost(t *testing.T) {
	s := crafting.NewStatus(testAttributes(), testRecipe())
	s.Buffs.WasteNot = 2

	s.CastAction(crafting.BasicSynthesis)

	assert.Equal(t, 35, s.Durability)
	assert.Equal(t, 1, s.Buffs.WasteNot)
}

func TestCastAction_ManipulationRestoresAfterOtherActions(t *testing.T) {
	attrs := testAttributes()
	attrs.CraftPoints = 400
	s := crafting.NewStatus(attrs, testRecipe())
	s.Durability = 20

	s.CastAction(crafting.Manipulation)
	assert.Equal(t, 20, s.Durability, "no restore on the casting step")
	assert.Equal(t, crafting.MaxManipulation, s.Buffs.Manipulation)

	s.CastAction(crafting.BasicTouch)
	assert.Equal(t, 15, s.Durability)
	assert.Equal(t, crafting.MaxManipulation-1, s.Buffs.Manipulation)
}

func TestCastAction_MastersMendIsCappedAtRecipeDurability(t *testing.T) {
	s := crafting.NewStatus(testAttributes(), testRecipe())
	s.Durability = 25

	s.CastAction(crafting.MastersMend)

	assert.Equal(t, 40, s.Durability)
	assert.Equal(t, 112, s.CraftPoints)
}

func TestIsActionAllowed_Reasons(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *crafting.Status)
		action crafting.Action
		reason crafting.CastActionReason
	}{
		{"not enough craft points", func(s *crafting.Status) { s.CraftPoints = 10 }, crafting.BasicTouch, crafting.ReasonCraftPointsNotEnough},
		{"level too low", func(s *crafting.Status) { s.Attributes.Level = 10 }, crafting.Groundwork, crafting.ReasonLevelTooLow},
		{"first step only", func(s *crafting.Status) { s.Step = 3 }, crafting.MuscleMemory, crafting.ReasonOnlyFirstStep},
		{"byregot needs stacks", func(s *crafting.Status) {}, crafting.ByregotsBlessing, crafting.ReasonRequireInnerQuiet},
		{"finesse needs ten stacks", func(s *crafting.Status) { s.Buffs.InnerQuiet = 9 }, crafting.TrainedFinesse, crafting.ReasonRequireInnerQuiet10},
		{"prudent under waste not", func(s *crafting.Status) { s.Buffs.WasteNot = 3 }, crafting.PrudentTouch, crafting.ReasonWasteNotActive},
		{"broken item", func(s *crafting.Status) { s.Durability = 0 }, crafting.BasicSynthesis, crafting.ReasonCraftFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := crafting.NewStatus(testAttributes(), testRecipe())
			tt.mutate(&s)

			err := s.IsActionAllowed(tt.action)

			var castErr *crafting.CastActionError
			require.ErrorAs(t, err, &castErr)
			assert.Equal(t, tt.reason, castErr.Reason)
			assert.Equal(t, tt.action, castErr.Action)
		})
	}
}

func TestNewRecipe_ScalesLevelRow(t *testing.T) {
	r, err := crafting.NewRecipe(560, 100, 50, 50)

	require.NoError(t, err)
	assert.Equal(t, 3500, r.Difficulty)
	assert.Equal(t, 3600, r.Quality)
	assert.Equal(t, 40, r.Durability)
	assert.Equal(t, 90, r.JobLevel)
}

func TestNewRecipe_UnknownLevel(t *testing.T) {
	_, err := crafting.NewRecipe(9999, 100, 100, 100)

	var levelErr *crafting.ErrUnknownRecipeLevel
	require.ErrorAs(t, err, &levelErr)
	assert.Equal(t, 9999, levelErr.Level)
}

func TestKnownRecipeLevels_Ascending(t *testing.T) {
	levels := crafting.KnownRecipeLevels()

	require.NotEmpty(t, levels)
	assert.IsIncreasing(t, levels)
}
