package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dragBoard() BoardView {
	return BuildView(testColumns(), []ContentCard{
		{ID: "c1", ColumnID: "col-a", Position: 0},
		{ID: "c2", ColumnID: "col-a", Position: 1},
		{ID: "c3", ColumnID: "col-b", Position: 0},
	})
}

func TestStartDragUnknownCard(t *testing.T) {
	_, ok := StartDrag(dragBoard(), "nope")
	assert.False(t, ok)
}

func TestDropIntoOtherColumnAppendsToEnd(t *testing.T) {
	view := dragBoard()
	g, ok := StartDrag(view, "c1")
	require.True(t, ok)

	next, move := g.Drop(&DropTarget{ColumnID: "col-b"})
	require.NotNil(t, move)
	assert.Equal(t, "c1", move.CardID)
	assert.Equal(t, "col-b", move.ColumnID)
	assert.Equal(t, 1, move.Position)

	assert.Equal(t, []string{"c2"}, next[0].CardIDs)
	assert.Equal(t, []string{"c3", "c1"}, next[1].CardIDs)
}

func TestDropOntoCardTargetsThatCardsColumn(t *testing.T) {
	view := dragBoard()
	g, ok := StartDrag(view, "c2")
	require.True(t, ok)

	next, move := g.Drop(&DropTarget{CardID: "c3"})
	require.NotNil(t, move)
	assert.Equal(t, "col-b", move.ColumnID)
	assert.Equal(t, 1, move.Position)
	assert.Equal(t, []string{"c3", "c2"}, next[1].CardIDs)
}

func TestDropIntoEmptyColumn(t *testing.T) {
	view := dragBoard()
	g, ok := StartDrag(view, "c3")
	require.True(t, ok)

	next, move := g.Drop(&DropTarget{ColumnID: "col-c"})
	require.NotNil(t, move)
	assert.Equal(t, "col-c", move.ColumnID)
	assert.Equal(t, 0, move.Position)
	assert.Empty(t, next[1].CardIDs)
	assert.Equal(t, []string{"c3"}, next[2].CardIDs)
}

func TestDropInOwnColumnMovesToEnd(t *testing.T) {
	view := dragBoard()
	g, ok := StartDrag(view, "c1")
	require.True(t, ok)

	next, move := g.Drop(&DropTarget{ColumnID: "col-a"})
	require.NotNil(t, move)
	assert.Equal(t, "col-a", move.ColumnID)
	assert.Equal(t, 1, move.Position)
	assert.Equal(t, []string{"c2", "c1"}, next[0].CardIDs)
}

func TestDropWhereCardAlreadySitsIsNoOp(t *testing.T) {
	view := dragBoard()
	g, ok := StartDrag(view, "c2")
	require.True(t, ok)

	// c2 is already the last card of col-a
	next, move := g.Drop(&DropTarget{ColumnID: "col-a"})
	assert.Nil(t, move)
	assert.Equal(t, view, next)
}

func TestDropNilTargetCancels(t *testing.T) {
	view := dragBoard()
	g, ok := StartDrag(view, "c1")
	require.True(t, ok)

	// hover somewhere first; cancel must still revert to drag-start state
	_, g = g.Hover(view, DropTarget{ColumnID: "col-b"})

	next, move := g.Drop(nil)
	assert.Nil(t, move)
	assert.Equal(t, view, next)
}

func TestDropUnresolvableTargetCancels(t *testing.T) {
	view := dragBoard()
	g, ok := StartDrag(view, "c1")
	require.True(t, ok)

	next, move := g.Drop(&DropTarget{ColumnID: "col-gone"})
	assert.Nil(t, move)
	assert.Equal(t, view, next)
}

func TestHoverResplicesPreviewOnly(t *testing.T) {
	view := dragBoard()
	g, ok := StartDrag(view, "c1")
	require.True(t, ok)

	preview, g := g.Hover(view, DropTarget{CardID: "c3"})
	assert.Equal(t, PhaseHovering, g.Phase)
	assert.Equal(t, "col-b", g.HoverColumnID)
	assert.Equal(t, 0, g.HoverIndex)
	assert.Equal(t, []string{"c2"}, preview[0].CardIDs)
	assert.Equal(t, []string{"c1", "c3"}, preview[1].CardIDs)

	// the original board is untouched
	assert.Equal(t, []string{"c1", "c2"}, view[0].CardIDs)
}

func TestHoverUnknownTargetLeavesViewUnchanged(t *testing.T) {
	view := dragBoard()
	g, ok := StartDrag(view, "c1")
	require.True(t, ok)

	same, g2 := g.Hover(view, DropTarget{ColumnID: "col-gone"})
	assert.Equal(t, view, same)
	assert.Equal(t, g, g2)
}

func TestHoverThenDropStillAppendsToEnd(t *testing.T) {
	view := dragBoard()
	g, ok := StartDrag(view, "c1")
	require.True(t, ok)

	// hover above c3 previews slot 0, but the persisted drop appends
	preview, g := g.Hover(view, DropTarget{CardID: "c3"})
	require.Equal(t, []string{"c1", "c3"}, preview[1].CardIDs)

	next, move := g.Drop(&DropTarget{CardID: "c3"})
	require.NotNil(t, move)
	assert.Equal(t, 1, move.Position)
	assert.Equal(t, []string{"c3", "c1"}, next[1].CardIDs)
}

func TestCancelRevertsToOrigin(t *testing.T) {
	view := dragBoard()
	g, ok := StartDrag(view, "c1")
	require.True(t, ok)

	_, g = g.Hover(view, DropTarget{ColumnID: "col-c"})
	assert.Equal(t, view, g.Cancel())
}

func TestDropOnIdleGestureDoesNothing(t *testing.T) {
	var g Gesture
	next, move := g.Drop(&DropTarget{ColumnID: "col-a"})
	assert.Nil(t, move)
	assert.Nil(t, next)
}
