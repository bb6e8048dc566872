package models

import "strings"

// Row is one ordered row of cells. Cells is sparse: a nil entry is an
// absent cell, and indices past the populated extent are absent too.
type Row struct {
	// Index is the zero-based row position within the sheet.
	Index int
	// Cells holds the populated column range. Entry j corresponds to
	// zero-based column j; nil marks a gap.
	Cells []*Cell
}

// Cell returns the cell at zero-based column index i, or nil when the
// column is absent. Out-of-range indices are equivalent to absent cells,
// so mappers need no bounds checks.
func (r Row) Cell(i int) *Cell {
	if i < 0 || i >= len(r.Cells) {
		return nil
	}
	return r.Cells[i]
}

// IsEmpty reports whether the row carries no displayable content. Text
// cells count only when their trimmed content is non-empty; numeric,
// boolean and formula cells always count as content, whatever their value.
func (r Row) IsEmpty() bool {
	for _, c := range r.Cells {
		if c == nil {
			continue
		}
		switch c.Kind {
		case KindText:
			if strings.TrimSpace(c.Text) != "" {
				return false
			}
		case KindNumeric, KindBool, KindFormula:
			return false
		}
	}
	return true
}
