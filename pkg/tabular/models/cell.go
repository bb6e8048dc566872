// Package models defines the data structures shared by the tabular reader:
// the tagged cell value, the sparse row, and the row-emptiness rule.
package models

import "time"

// Kind discriminates the underlying type of a spreadsheet cell.
type Kind int

const (
	// KindText is a cell holding a string value.
	KindText Kind = iota
	// KindNumeric is a cell holding a float64 value, possibly a date serial.
	KindNumeric
	// KindBool is a cell holding a boolean value.
	KindBool
	// KindFormula is a cell holding a formula with a cached result.
	KindFormula
	// KindBlank is a present cell with no value.
	KindBlank
	// KindError is a cell holding a spreadsheet error (#DIV/0!, #N/A, ...).
	KindError
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumeric:
		return "numeric"
	case KindBool:
		return "bool"
	case KindFormula:
		return "formula"
	case KindBlank:
		return "blank"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// CachedResult is the cached outcome of a formula cell, tagged by result
// type so callers branch on IsText instead of probing and recovering.
type CachedResult struct {
	// IsText reports whether the cached result is textual.
	IsText bool
	// Text is the cached string result (valid when IsText).
	Text string
	// Number is the cached numeric result (valid when !IsText).
	Number float64
}

// Cell is one spreadsheet cell with its kind tag and raw payload. Only the
// fields matching Kind are meaningful; the rest stay at their zero values.
type Cell struct {
	// Kind selects which payload fields below are valid.
	Kind Kind
	// Text is the string content of a text cell.
	Text string
	// Number is the numeric content of a numeric cell. For date-formatted
	// cells this is the raw date serial.
	Number float64
	// Bool is the content of a boolean cell.
	Bool bool
	// DateFormatted marks a numeric cell whose number format is a date or
	// time format.
	DateFormatted bool
	// Time is the decoded date-time of a date-formatted numeric cell. The
	// document backend resolves the workbook epoch (1900 vs 1904) when
	// filling it.
	Time time.Time
	// Formula is the cached result of a formula cell.
	Formula CachedResult
}

// TextCell returns a text cell.
func TextCell(s string) *Cell {
	return &Cell{Kind: KindText, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) *Cell {
	return &Cell{Kind: KindNumeric, Number: v}
}

// DateCell returns a date-formatted numeric cell carrying both the raw
// serial and its decoded time.
func DateCell(serial float64, t time.Time) *Cell {
	return &Cell{Kind: KindNumeric, Number: serial, DateFormatted: true, Time: t}
}

// BoolCell returns a boolean cell.
func BoolCell(b bool) *Cell {
	return &Cell{Kind: KindBool, Bool: b}
}

// FormulaTextCell returns a formula cell with a cached string result.
func FormulaTextCell(s string) *Cell {
	return &Cell{Kind: KindFormula, Formula: CachedResult{IsText: true, Text: s}}
}

// FormulaNumberCell returns a formula cell with a cached numeric result.
func FormulaNumberCell(v float64) *Cell {
	return &Cell{Kind: KindFormula, Formula: CachedResult{Number: v}}
}

// BlankCell returns a present but empty cell.
func BlankCell() *Cell {
	return &Cell{Kind: KindBlank}
}

// ErrorCell returns an error cell.
func ErrorCell() *Cell {
	return &Cell{Kind: KindError}
}
