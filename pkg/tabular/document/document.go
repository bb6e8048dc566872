// Package document opens spreadsheet files and exposes them behind a small
// provider boundary: a Document of ordered Sheets, each yielding a lazy,
// single-pass iterator of rows of tagged cells. The container format is
// auto-detected from the file header: zip archives open as OOXML
// workbooks (.xlsx) via excelize, OLE2 compound files open as legacy BIFF
// workbooks (.xls) via extrame/xls.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alentr/ler-excel/pkg/tabular/models"
)

// ErrUnknownFormat indicates the source is neither a zip-based nor an
// OLE2-based spreadsheet container.
var ErrUnknownFormat = errors.New("unrecognized spreadsheet format")

// SheetIndexError indicates a requested sheet index outside the document's
// sheet range.
type SheetIndexError struct {
	Index int
	Count int
}

func (e *SheetIndexError) Error() string {
	return fmt.Sprintf("sheet index %d out of range: document has %d sheet(s)", e.Index, e.Count)
}

// Document is an open spreadsheet workbook. It is owned by a single caller
// and must be closed after use.
type Document interface {
	// SheetCount returns the number of sheets in the workbook.
	SheetCount() int
	// SheetName returns the name of the sheet at the zero-based index, or
	// the empty string when the index is out of range.
	SheetName(index int) string
	// Sheet returns the sheet at the zero-based index. An out-of-range
	// index is a *SheetIndexError.
	Sheet(index int) (Sheet, error)
	// Close releases the underlying file handle.
	Close() error
}

// Sheet is one worksheet of an open document.
type Sheet interface {
	// Name returns the sheet name.
	Name() string
	// Rows returns a single-pass iterator over the sheet's rows, in order,
	// starting at row zero. The iterator is not restartable.
	Rows() (RowIterator, error)
}

// RowIterator iterates sheet rows in the excelize style:
//
//	for it.Next() {
//	    row := it.Row()
//	    ...
//	}
type RowIterator interface {
	// Next advances to the next row and reports whether one exists.
	Next() bool
	// Row returns the current row. Valid only after a true Next.
	Row() models.Row
}

var (
	zipMagic  = []byte{0x50, 0x4b, 0x03, 0x04}
	ole2Magic = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}
)

// Open opens the spreadsheet file at path, detecting the container format
// from its leading bytes.
func Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	head := make([]byte, 8)
	n, _ := io.ReadFull(f, head)
	if cerr := f.Close(); cerr != nil {
		return nil, cerr
	}
	switch {
	case n >= len(zipMagic) && bytes.HasPrefix(head[:n], zipMagic):
		return openXLSXFile(path)
	case n >= len(ole2Magic) && bytes.HasPrefix(head[:n], ole2Magic):
		return openXLSFile(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// OpenReader opens a spreadsheet from a byte stream. The stream is read
// fully into memory first; both backends require random access.
func OpenReader(r io.Reader) (Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(b, zipMagic):
		return openXLSXReader(bytes.NewReader(b))
	case bytes.HasPrefix(b, ole2Magic):
		return openXLSReader(bytes.NewReader(b))
	default:
		return nil, ErrUnknownFormat
	}
}
