package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftsolver-go/internal/application/common"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/domain/shared"
)

func validStatus() crafting.Status {
	return crafting.NewStatus(
		crafting.Attributes{Level: 90, Craftsmanship: 200, Control: 200, CraftPoints: 200},
		crafting.Recipe{Level: 1, JobLevel: 1, Difficulty: 100, Quality: 1000, Durability: 40,
			ProgressDivider: 50, QualityDivider: 30, ProgressModifier: 100, QualityModifier: 100},
	)
}

func TestValidateStatus(t *testing.T) {
	require.NoError(t, common.ValidateStatus(validStatus()))

	tests := []struct {
		name   string
		mutate func(s *crafting.Status)
		field  string
	}{
		{"zero difficulty", func(s *crafting.Status) { s.Recipe.Difficulty = 0 }, "Difficulty"},
		{"inner quiet over bound", func(s *crafting.Status) { s.Buffs.InnerQuiet = 11 }, "InnerQuiet"},
		{"negative quality", func(s *crafting.Status) { s.Quality = -1 }, "Quality"},
		{"durability above recipe", func(s *crafting.Status) { s.Durability = 41 }, "Status.Durability"},
		{"craft points above attributes", func(s *crafting.Status) { s.CraftPoints = 201 }, "Status.CraftPoints"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStatus()
			tt.mutate(&s)

			err := common.ValidateStatus(s)

			var verr *shared.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Field, tt.field)
		})
	}
}

func TestValidateActions(t *testing.T) {
	assert.NoError(t, common.ValidateActions("actions", []crafting.Action{crafting.BasicTouch}))

	err := common.ValidateActions("actions", []crafting.Action{crafting.BasicTouch, crafting.Action(99)})
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "actions[1]", verr.Field)
}

func TestValidateTableActions(t *testing.T) {
	assert.NoError(t, common.ValidateTableActions("actions", []crafting.Action{crafting.BasicTouch, crafting.Innovation}))

	err := common.ValidateTableActions("actions", []crafting.Action{crafting.BasicTouch, crafting.Reflect})
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "actions[1]", verr.Field)

	err = common.ValidateTableActions("actions", []crafting.Action{crafting.Action(99)})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "unknown action")
}
