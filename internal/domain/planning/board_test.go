package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns() []WorkflowColumn {
	return []WorkflowColumn{
		{ID: "col-b", Name: "In Progress", Position: 1},
		{ID: "col-a", Name: "Idea", Position: 0},
		{ID: "col-c", Name: "Done", Position: 2},
	}
}

func TestBuildViewOrdersColumnsAndCards(t *testing.T) {
	cards := []ContentCard{
		{ID: "c2", ColumnID: "col-a", Position: 1},
		{ID: "c1", ColumnID: "col-a", Position: 0},
		{ID: "c3", ColumnID: "col-b", Position: 0},
	}

	view := BuildView(testColumns(), cards)
	require.Len(t, view, 3)

	assert.Equal(t, "col-a", view[0].ColumnID)
	assert.Equal(t, []string{"c1", "c2"}, view[0].CardIDs)
	assert.Equal(t, "col-b", view[1].ColumnID)
	assert.Equal(t, []string{"c3"}, view[1].CardIDs)
	assert.Equal(t, "col-c", view[2].ColumnID)
	assert.Empty(t, view[2].CardIDs)
}

func TestBuildViewDropsOrphanCards(t *testing.T) {
	cards := []ContentCard{
		{ID: "c1", ColumnID: "col-a", Position: 0},
		{ID: "ghost", ColumnID: "col-gone", Position: 0},
	}

	view := BuildView(testColumns(), cards)
	for _, col := range view {
		assert.NotContains(t, col.CardIDs, "ghost")
	}
	assert.Equal(t, []string{"c1"}, view[0].CardIDs)
}

func TestBuildViewPositionTiesKeepInputOrder(t *testing.T) {
	cards := []ContentCard{
		{ID: "first", ColumnID: "col-a", Position: 0},
		{ID: "second", ColumnID: "col-a", Position: 0},
	}

	view := BuildView(testColumns(), cards)
	assert.Equal(t, []string{"first", "second"}, view[0].CardIDs)
}

func TestCloneDoesNotAlias(t *testing.T) {
	view := BuildView(testColumns(), []ContentCard{
		{ID: "c1", ColumnID: "col-a", Position: 0},
	})

	clone := view.Clone()
	clone.remove("c1")

	assert.Equal(t, []string{"c1"}, view[0].CardIDs)
	assert.Empty(t, clone[0].CardIDs)
}

func TestInsertClampsSlot(t *testing.T) {
	view := BuildView(testColumns(), []ContentCard{
		{ID: "c1", ColumnID: "col-a", Position: 0},
	})

	view.insert("late", 0, 99)
	assert.Equal(t, []string{"c1", "late"}, view[0].CardIDs)

	view.insert("early", 0, -5)
	assert.Equal(t, []string{"early", "c1", "late"}, view[0].CardIDs)
}
