package document

import (
	"io"

	"github.com/extrame/xls"

	"github.com/alentr/ler-excel/pkg/tabular/models"
)

// xlsDocument reads legacy BIFF workbooks through extrame/xls. The BIFF
// reader surfaces every cell as its display text, so cells are text-kind;
// numeric and boolean content is still recoverable downstream through
// text coercion, but date cells arrive pre-formatted and carry no serial.
type xlsDocument struct {
	wb *xls.WorkBook
}

func openXLSFile(path string) (Document, error) {
	wb, err := xls.Open(path, "windows-1252")
	if err != nil {
		wb, err = xls.Open(path, "utf-8")
		if err != nil {
			return nil, err
		}
	}
	return &xlsDocument{wb: wb}, nil
}

func openXLSReader(r io.ReadSeeker) (Document, error) {
	wb, err := xls.OpenReader(r, "windows-1252")
	if err != nil {
		if _, serr := r.Seek(0, io.SeekStart); serr != nil {
			return nil, serr
		}
		wb, err = xls.OpenReader(r, "utf-8")
		if err != nil {
			return nil, err
		}
	}
	return &xlsDocument{wb: wb}, nil
}

func (d *xlsDocument) SheetCount() int {
	return d.wb.NumSheets()
}

func (d *xlsDocument) SheetName(index int) string {
	if index < 0 || index >= d.wb.NumSheets() {
		return ""
	}
	ws := d.wb.GetSheet(index)
	if ws == nil {
		return ""
	}
	return ws.Name
}

func (d *xlsDocument) Sheet(index int) (Sheet, error) {
	if index < 0 || index >= d.wb.NumSheets() {
		return nil, &SheetIndexError{Index: index, Count: d.wb.NumSheets()}
	}
	ws := d.wb.GetSheet(index)
	if ws == nil {
		return nil, &SheetIndexError{Index: index, Count: d.wb.NumSheets()}
	}
	return &xlsSheet{ws: ws}, nil
}

// Close is a no-op: the BIFF reader holds the workbook in memory and owns
// no file handle after open.
func (d *xlsDocument) Close() error { return nil }

type xlsSheet struct {
	ws *xls.WorkSheet
}

func (s *xlsSheet) Name() string { return s.ws.Name }

func (s *xlsSheet) Rows() (RowIterator, error) {
	return &xlsRowIterator{sheet: s, last: int(s.ws.MaxRow)}, nil
}

type xlsRowIterator struct {
	sheet *xlsSheet
	next  int
	last  int
	cur   models.Row
}

func (it *xlsRowIterator) Next() bool {
	if it.next > it.last {
		return false
	}
	it.cur = it.sheet.buildRow(it.next)
	it.next++
	return true
}

func (it *xlsRowIterator) Row() models.Row { return it.cur }

// sheetRow fetches a row by index. The BIFF reader panics on in-range rows
// the stream declared no ROW record for; those rows are simply absent.
func sheetRow(ws *xls.WorkSheet, i int) (r *xls.Row) {
	defer func() {
		if recover() != nil {
			r = nil
		}
	}()
	return ws.Row(i)
}

func (s *xlsSheet) buildRow(rowIdx int) models.Row {
	row := models.Row{Index: rowIdx}
	r := sheetRow(s.ws, rowIdx)
	if r == nil || r.LastCol() <= 0 {
		return row
	}
	row.Cells = make([]*models.Cell, r.LastCol())
	for col := r.FirstCol(); col < r.LastCol(); col++ {
		if v := r.Col(col); v != "" {
			row.Cells[col] = models.TextCell(v)
		}
	}
	return row
}
