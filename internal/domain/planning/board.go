package planning

import "sort"

// ColumnCards is one column's card ids in display order.
type ColumnCards struct {
	ColumnID string
	CardIDs  []string
}

// BoardView is the in-memory arrangement a drag gesture operates on:
// workflow columns in order, each holding its card ids sorted by position.
type BoardView []ColumnCards

// BuildView groups cards under their columns. Cards are sorted ascending
// by position; ties keep their input order. Cards whose column id is not
// part of the workflow are dropped from the view.
func BuildView(columns []WorkflowColumn, cards []ContentCard) BoardView {
	ordered := make([]WorkflowColumn, len(columns))
	copy(ordered, columns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	sorted := make([]ContentCard, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	view := make(BoardView, 0, len(ordered))
	for _, col := range ordered {
		cc := ColumnCards{ColumnID: col.ID, CardIDs: []string{}}
		for _, card := range sorted {
			if card.ColumnID == col.ID {
				cc.CardIDs = append(cc.CardIDs, card.ID)
			}
		}
		view = append(view, cc)
	}
	return view
}

// Clone deep-copies the view so speculative hover edits never alias
// the snapshot kept for cancel.
func (v BoardView) Clone() BoardView {
	out := make(BoardView, len(v))
	for i, col := range v {
		ids := make([]string, len(col.CardIDs))
		copy(ids, col.CardIDs)
		out[i] = ColumnCards{ColumnID: col.ColumnID, CardIDs: ids}
	}
	return out
}

// locate returns the column index and slot of a card, or ok=false.
func (v BoardView) locate(cardID string) (colIdx, slot int, ok bool) {
	for i, col := range v {
		for j, id := range col.CardIDs {
			if id == cardID {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func (v BoardView) columnIndex(columnID string) (int, bool) {
	for i, col := range v {
		if col.ColumnID == columnID {
			return i, true
		}
	}
	return 0, false
}

// remove takes the card out of whatever column holds it.
func (v BoardView) remove(cardID string) {
	colIdx, slot, ok := v.locate(cardID)
	if !ok {
		return
	}
	ids := v[colIdx].CardIDs
	v[colIdx].CardIDs = append(ids[:slot], ids[slot+1:]...)
}

// insert places the card at the given slot of the column, clamping to
// the column bounds.
func (v BoardView) insert(cardID string, colIdx, slot int) {
	ids := v[colIdx].CardIDs
	if slot < 0 {
		slot = 0
	}
	if slot > len(ids) {
		slot = len(ids)
	}
	ids = append(ids, "")
	copy(ids[slot+1:], ids[slot:])
	ids[slot] = cardID
	v[colIdx].CardIDs = ids
}
