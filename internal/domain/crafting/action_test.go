package crafting_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

func TestParseAction_NormalizesNames(t *testing.T) {
	for _, name := range []string{"basic_synthesis", "Basic Synthesis", "basic-synthesis", " BASIC_SYNTHESIS "} {
		a, err := crafting.ParseAction(name)
		require.NoError(t, err, name)
		assert.Equal(t, crafting.BasicSynthesis, a)
	}

	a, err := crafting.ParseAction("Byregot's Blessing")
	require.NoError(t, err)
	assert.Equal(t, crafting.ByregotsBlessing, a)
}

func TestParseAction_Unknown(t *testing.T) {
	_, err := crafting.ParseAction("hasty_touch")

	var unknown *crafting.ErrUnknownAction
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "hasty_touch", unknown.Name)
}

func TestAction_NamesRoundTripThroughJSON(t *testing.T) {
	in := []crafting.Action{crafting.Groundwork, crafting.WasteNotII, crafting.Observe}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["groundwork","waste_not_ii","observe"]`, string(raw))

	var out []crafting.Action
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestAllActions_MatchesNames(t *testing.T) {
	all := crafting.AllActions()
	names := crafting.ActionNames()

	require.Len(t, names, len(all))
	for i, a := range all {
		assert.Equal(t, names[i], a.String())
	}
}

func TestAction_Kinds(t *testing.T) {
	assert.True(t, crafting.DelicateSynthesis.IsSynthesis())
	assert.True(t, crafting.DelicateSynthesis.IsTouch())
	assert.False(t, crafting.Veneration.IsSynthesis())
	assert.False(t, crafting.Veneration.IsTouch())
	assert.True(t, crafting.PreparatoryTouch.IsTouch())
	assert.True(t, crafting.MuscleMemory.IsOpener())
	assert.True(t, crafting.Reflect.IsOpener())
	assert.False(t, crafting.BasicSynthesis.IsOpener())
}
