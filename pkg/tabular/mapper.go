package tabular

import "github.com/alentr/ler-excel/pkg/tabular/models"

// RowMapper converts one spreadsheet row into a value of type T. Returning
// false skips the row: it is omitted from the result sequence without
// error. The reader never invokes a mapper for header rows or for rows it
// already judged empty.
type RowMapper[T any] interface {
	MapRow(row models.Row) (T, bool)
}

// RowMapperFunc adapts a plain function to the RowMapper interface.
type RowMapperFunc[T any] func(row models.Row) (T, bool)

// MapRow calls f.
func (f RowMapperFunc[T]) MapRow(row models.Row) (T, bool) {
	return f(row)
}
