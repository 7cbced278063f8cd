package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColumnsTrimsAndFilters(t *testing.T) {
	got, err := NormalizeColumns([]string{"  Idea ", "", "Done", "   "})
	require.NoError(t, err)
	assert.Equal(t, []string{"Idea", "Done"}, got)
}

func TestNormalizeColumnsTooFew(t *testing.T) {
	_, err := NormalizeColumns([]string{"", "Plan", ""})
	assert.ErrorIs(t, err, ErrTooFewColumns)

	_, err = NormalizeColumns([]string{"Only"})
	assert.ErrorIs(t, err, ErrTooFewColumns)

	_, err = NormalizeColumns(nil)
	assert.ErrorIs(t, err, ErrTooFewColumns)
}

func TestNormalizeColumnsTooMany(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	_, err := NormalizeColumns(names)
	assert.ErrorIs(t, err, ErrTooManyColumns)

	// exactly 7 is fine
	got, err := NormalizeColumns(names[:7])
	require.NoError(t, err)
	assert.Len(t, got, 7)
}

func TestNormalizeColumnsKeepsDuplicates(t *testing.T) {
	// duplicate names are legal; columns are identified by id, not name
	got, err := NormalizeColumns([]string{"Draft", "Draft"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Draft", "Draft"}, got)
}

func TestPresetColumns(t *testing.T) {
	cols, err := PresetColumns("classic")
	require.NoError(t, err)
	assert.Equal(t, []string{"Idea", "In Progress", "Done"}, cols)

	_, err = PresetColumns("waterfall")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestPresetColumnsReturnsCopy(t *testing.T) {
	cols, err := PresetColumns("classic")
	require.NoError(t, err)
	cols[0] = "mutated"

	again, err := PresetColumns("classic")
	require.NoError(t, err)
	assert.Equal(t, "Idea", again[0])
}

func TestPresetKeysAllResolve(t *testing.T) {
	for _, key := range PresetKeys() {
		cols, err := PresetColumns(key)
		require.NoError(t, err, key)
		assert.GreaterOrEqual(t, len(cols), MinColumns)
		assert.LessOrEqual(t, len(cols), MaxColumns)
	}
}
