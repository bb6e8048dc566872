// Package tabular reads tabular spreadsheet files (.xlsx and legacy .xls)
// and converts each data row into a typed value through a caller-supplied
// RowMapper, skipping header rows and blank rows.
package tabular

// DefaultHeaderRows is the number of header rows skipped when Options does
// not say otherwise. Most sheets carry one row of column names.
const DefaultHeaderRows = 1

// Options configures a read.
type Options struct {
	// HeaderRows is the number of leading rows to skip before mapping.
	// If nil, defaults to DefaultHeaderRows.
	HeaderRows *int
	// SheetIndex selects the sheet to read, zero-based.
	SheetIndex int
}

// DefaultOptions returns default read options: one header row, first sheet.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) headerRows() int {
	if o.HeaderRows != nil {
		return *o.HeaderRows
	}
	return DefaultHeaderRows
}
