package document

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/alentr/ler-excel/pkg/tabular/models"
)

// xlsxDocument reads OOXML workbooks through excelize.
type xlsxDocument struct {
	f        *excelize.File
	date1904 bool
}

func openXLSXFile(path string) (Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return newXLSXDocument(f), nil
}

func openXLSXReader(r io.Reader) (Document, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	return newXLSXDocument(f), nil
}

func newXLSXDocument(f *excelize.File) *xlsxDocument {
	d := &xlsxDocument{f: f}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

func (d *xlsxDocument) SheetCount() int {
	return len(d.f.GetSheetList())
}

func (d *xlsxDocument) SheetName(index int) string {
	if index < 0 || index >= d.SheetCount() {
		return ""
	}
	return d.f.GetSheetName(index)
}

func (d *xlsxDocument) Sheet(index int) (Sheet, error) {
	if index < 0 || index >= d.SheetCount() {
		return nil, &SheetIndexError{Index: index, Count: d.SheetCount()}
	}
	return &xlsxSheet{doc: d, name: d.f.GetSheetName(index)}, nil
}

func (d *xlsxDocument) Close() error {
	return d.f.Close()
}

type xlsxSheet struct {
	doc  *xlsxDocument
	name string
}

func (s *xlsxSheet) Name() string { return s.name }

func (s *xlsxSheet) Rows() (RowIterator, error) {
	// The formatted-row scaffold fixes each row's populated extent; cell
	// kinds are resolved lazily per row from the underlying parts.
	scaffold, err := s.doc.f.GetRows(s.name)
	if err != nil {
		return nil, err
	}
	return &xlsxRowIterator{sheet: s, scaffold: scaffold, next: 0}, nil
}

type xlsxRowIterator struct {
	sheet    *xlsxSheet
	scaffold [][]string
	next     int
	cur      models.Row
}

func (it *xlsxRowIterator) Next() bool {
	if it.next >= len(it.scaffold) {
		return false
	}
	it.cur = it.sheet.buildRow(it.next, len(it.scaffold[it.next]))
	it.next++
	return true
}

func (it *xlsxRowIterator) Row() models.Row { return it.cur }

func (s *xlsxSheet) buildRow(rowIdx, width int) models.Row {
	row := models.Row{Index: rowIdx}
	if width == 0 {
		return row
	}
	row.Cells = make([]*models.Cell, width)
	for col := 0; col < width; col++ {
		name, err := excelize.CoordinatesToCellName(col+1, rowIdx+1)
		if err != nil {
			continue
		}
		row.Cells[col] = s.doc.cellAt(s.name, name)
	}
	return row
}

// cellAt resolves one cell into the tagged model. A cell with neither a
// raw value nor a formula is reported as absent (nil): through the row
// scaffold a styled empty cell and a genuine gap are the same thing.
func (d *xlsxDocument) cellAt(sheet, name string) *models.Cell {
	raw, _ := d.f.GetCellValue(sheet, name, excelize.Options{RawCellValue: true})
	formula, _ := d.f.GetCellFormula(sheet, name)
	ctype, _ := d.f.GetCellType(sheet, name)

	if formula != "" {
		// Cached result type follows the stored cell type: "str" means the
		// formula evaluated to text, otherwise the cached value is numeric.
		if ctype == excelize.CellTypeFormula {
			return models.FormulaTextCell(raw)
		}
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return models.FormulaNumberCell(n)
		}
		return models.FormulaTextCell(raw)
	}

	switch ctype {
	case excelize.CellTypeBool:
		return models.BoolCell(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeError:
		return models.ErrorCell()
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.TextCell(raw)
	case excelize.CellTypeDate:
		// ISO 8601 storage, used by some producers instead of serials.
		if t, err := time.Parse("2006-01-02T15:04:05", strings.TrimSuffix(raw, "Z")); err == nil {
			return models.DateCell(0, t)
		}
		return models.TextCell(raw)
	}

	if raw == "" {
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.TextCell(raw)
	}
	if d.isDateStyled(sheet, name) {
		if t, terr := excelize.ExcelDateToTime(n, d.date1904); terr == nil {
			return models.DateCell(n, t)
		}
	}
	return models.NumberCell(n)
}

func (d *xlsxDocument) isDateStyled(sheet, name string) bool {
	styleID, err := d.f.GetCellStyle(sheet, name)
	if err != nil {
		return false
	}
	style, err := d.f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if isBuiltinDateFormat(style.NumFmt) {
		return true
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return false
}
