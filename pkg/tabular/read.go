package tabular

import (
	"io"

	"github.com/alentr/ler-excel/pkg/tabular/document"
)

// ReadAll reads the spreadsheet file at path and maps its data rows into a
// slice, in source row order. The sheet selected by opts is read after
// skipping the configured header rows; rows without displayable content
// are skipped before the mapper runs, and rows the mapper declines are
// omitted. The document is closed on every return path.
func ReadAll[T any](path string, mapper RowMapper[T], opts Options) ([]T, error) {
	doc, err := document.Open(path)
	if err != nil {
		return nil, NewReadError(path, "read", err)
	}
	defer doc.Close()

	out, err := readSheet(doc, mapper, opts)
	if err != nil {
		return nil, NewReadError(path, "read", err)
	}
	return out, nil
}

// ReadAllFrom is ReadAll over a byte stream instead of a file path.
func ReadAllFrom[T any](r io.Reader, mapper RowMapper[T], opts Options) ([]T, error) {
	doc, err := document.OpenReader(r)
	if err != nil {
		return nil, NewReadError("", "read", err)
	}
	defer doc.Close()

	out, err := readSheet(doc, mapper, opts)
	if err != nil {
		return nil, NewReadError("", "read", err)
	}
	return out, nil
}

// SheetCount returns the number of sheets in the spreadsheet file at path.
func SheetCount(path string) (int, error) {
	doc, err := document.Open(path)
	if err != nil {
		return 0, NewReadError(path, "sheet-count", err)
	}
	defer doc.Close()
	return doc.SheetCount(), nil
}

// SheetNames returns the sheet names of the file at path, in sheet order.
func SheetNames(path string) ([]string, error) {
	doc, err := document.Open(path)
	if err != nil {
		return nil, NewReadError(path, "sheet-names", err)
	}
	defer doc.Close()
	return sheetNames(doc), nil
}

// SheetCountFrom is SheetCount over a byte stream.
func SheetCountFrom(r io.Reader) (int, error) {
	doc, err := document.OpenReader(r)
	if err != nil {
		return 0, NewReadError("", "sheet-count", err)
	}
	defer doc.Close()
	return doc.SheetCount(), nil
}

// SheetNamesFrom is SheetNames over a byte stream.
func SheetNamesFrom(r io.Reader) ([]string, error) {
	doc, err := document.OpenReader(r)
	if err != nil {
		return nil, NewReadError("", "sheet-names", err)
	}
	defer doc.Close()
	return sheetNames(doc), nil
}

func sheetNames(doc document.Document) []string {
	names := make([]string, doc.SheetCount())
	for i := range names {
		names[i] = doc.SheetName(i)
	}
	return names
}

func readSheet[T any](doc document.Document, mapper RowMapper[T], opts Options) ([]T, error) {
	sheet, err := doc.Sheet(opts.SheetIndex)
	if err != nil {
		return nil, err
	}
	rows, err := sheet.Rows()
	if err != nil {
		return nil, err
	}

	// Running out of rows while skipping headers is not an error; the
	// iterator simply exhausts and the result stays empty.
	skip := opts.headerRows()
	var out []T
	for rows.Next() {
		if skip > 0 {
			skip--
			continue
		}
		row := rows.Row()
		if row.IsEmpty() {
			continue
		}
		if v, ok := mapper.MapRow(row); ok {
			out = append(out, v)
		}
	}
	return out, nil
}
