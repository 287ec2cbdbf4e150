package recipe_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftsolver-go/internal/domain/recipe"
)

func record(id, job, level, name string, factors ...string) string {
	cols := []string{"0", id, job, level, name}
	for i := 5; i < 29; i++ {
		cols = append(cols, "0")
	}
	cols = append(cols, factors...)
	return strings.Join(cols, ",")
}

func TestBundledCatalog_ParsesAndBuildsRecipes(t *testing.T) {
	rows, err := recipe.BundledCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	seen := make(map[int]bool, len(rows))
	for _, row := range rows {
		assert.False(t, seen[row.ID], "duplicate id %d", row.ID)
		seen[row.ID] = true
		_, err := row.Recipe()
		assert.NoError(t, err, "row %d (%s) must reference a known recipe level", row.ID, row.Name)
	}
}

func TestParseCatalog_SkipsCommentsAndKeepsFileOrder(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"key,id,job,rlv,name",
		record("7", "ALC", "RecipeLevelTable#560", "Tincture", "100", "90", "50"),
		"# trailing comment",
		record("3", "CRP", "RecipeLevelTable#1", "Lumber", "50", "50", "50"),
	}, "\n")

	rows, err := recipe.ParseCatalog(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 7, rows[0].ID)
	assert.Equal(t, 560, rows[0].Level)
	assert.Equal(t, recipe.Row{
		ID: 3, Level: 1, Name: "Lumber", Job: "CRP",
		DifficultyFactor: 50, QualityFactor: 50, DurabilityFactor: 50,
	}, rows[1])

	r, err := rows[0].Recipe()
	require.NoError(t, err)
	assert.Equal(t, 3500, r.Difficulty)
	assert.Equal(t, 6480, r.Quality)
	assert.Equal(t, 40, r.Durability)
}

func TestParseCatalog_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		reason string
	}{
		{"short row", "0,1,CRP,RecipeLevelTable#1,Lumber", "columns"},
		{"bad level prefix", record("1", "CRP", "Level#1", "Lumber", "1", "1", "1"), "prefix"},
		{"bad id", record("x", "CRP", "RecipeLevelTable#1", "Lumber", "1", "1", "1"), "id"},
		{"bad factor", record("1", "CRP", "RecipeLevelTable#1", "Lumber", "1", "q", "1"), "quality_factor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "key,id\n" + tt.row + "\n"

			_, err := recipe.ParseCatalog(strings.NewReader(input))

			var malformed *recipe.ErrMalformedCatalog
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, 2, malformed.Line)
			assert.Contains(t, malformed.Reason, tt.reason)
		})
	}
}

func TestParseCatalog_Empty(t *testing.T) {
	rows, err := recipe.ParseCatalog(strings.NewReader("# nothing here\n"))

	require.NoError(t, err)
	assert.Empty(t, rows)
}
