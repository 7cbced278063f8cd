package planning

// The drag gesture is modeled as an explicit state value instead of
// ambient UI state, so placement rules can be exercised without
// simulating pointer events.

type GesturePhase int

const (
	PhaseIdle GesturePhase = iota
	PhaseDragging
	PhaseHovering
)

// Gesture is one drag interaction from pick-up to drop or cancel.
type Gesture struct {
	Phase  GesturePhase
	CardID string

	// Placement under the pointer, valid only in PhaseHovering.
	HoverColumnID string
	HoverIndex    int

	// Snapshot of the board at drag-start; hover edits are speculative
	// and cancel reverts to this.
	origin BoardView
}

// DropTarget is what the pointer is over: a card, or a column's empty
// space when no card is hovered.
type DropTarget struct {
	CardID   string
	ColumnID string
}

// Move is the single persisted outcome of a completed gesture.
type Move struct {
	CardID   string
	ColumnID string
	Position int
}

// StartDrag begins a gesture for a card on the board. Nothing is
// mutated; the current view is captured for later revert.
func StartDrag(view BoardView, cardID string) (Gesture, bool) {
	if _, _, ok := view.locate(cardID); !ok {
		return Gesture{}, false
	}
	return Gesture{
		Phase:  PhaseDragging,
		CardID: cardID,
		origin: view.Clone(),
	}, true
}

// resolveTarget maps a pointer target to a column and insertion slot.
// Hovering a card resolves to that card's own column and slot; hovering
// a column's empty space resolves to the column end.
func (v BoardView) resolveTarget(t DropTarget) (colIdx, slot int, ok bool) {
	if t.CardID != "" {
		if colIdx, slot, ok = v.locate(t.CardID); ok {
			return colIdx, slot, true
		}
	}
	if t.ColumnID != "" {
		if colIdx, ok = v.columnIndex(t.ColumnID); ok {
			return colIdx, len(v[colIdx].CardIDs), true
		}
	}
	return 0, 0, false
}

// Hover re-splices the working view so the dragged card sits where the
// pointer is. This is visual feedback only and is never persisted. An
// unresolvable target leaves the view and gesture unchanged.
func (g Gesture) Hover(view BoardView, t DropTarget) (BoardView, Gesture) {
	if g.Phase != PhaseDragging && g.Phase != PhaseHovering {
		return view, g
	}

	next := view.Clone()
	next.remove(g.CardID)
	colIdx, slot, ok := next.resolveTarget(t)
	if !ok {
		return view, g
	}
	next.insert(g.CardID, colIdx, slot)

	g.Phase = PhaseHovering
	g.HoverColumnID = next[colIdx].ColumnID
	g.HoverIndex = slot
	return next, g
}

// Drop completes the gesture. A nil target cancels: the origin snapshot
// comes back and no move is emitted. Otherwise the target column is
// resolved against the drag-start snapshot and the card is appended to
// its end. Dropping a card where it already sits is a no-op.
//
// The returned view is the optimistic arrangement; the caller persists
// the Move and reloads server state to reconcile.
func (g Gesture) Drop(t *DropTarget) (BoardView, *Move) {
	if g.Phase != PhaseDragging && g.Phase != PhaseHovering {
		return g.origin, nil
	}
	if t == nil {
		return g.origin, nil
	}

	colIdx, _, ok := g.origin.resolveTarget(*t)
	if !ok {
		return g.origin, nil
	}

	curCol, curSlot, found := g.origin.locate(g.CardID)
	if !found {
		return g.origin, nil
	}

	// Append-to-end: exact-index insertion only happens on the live
	// hover preview, never on the persisted drop.
	end := len(g.origin[colIdx].CardIDs)
	if colIdx == curCol {
		end--
	}
	if colIdx == curCol && curSlot == end {
		return g.origin, nil
	}

	next := g.origin.Clone()
	next.remove(g.CardID)
	next.insert(g.CardID, colIdx, len(next[colIdx].CardIDs))

	return next, &Move{
		CardID:   g.CardID,
		ColumnID: g.origin[colIdx].ColumnID,
		Position: end,
	}
}

// Cancel aborts the gesture with no mutation.
func (g Gesture) Cancel() BoardView {
	return g.origin
}
