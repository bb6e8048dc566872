// Package cellval converts heterogeneous spreadsheet cell values into
// requested Go types. Every function is total: a nil (absent) cell, a blank
// cell, or a value that cannot be coerced yields (zero, false) rather than
// an error. A cell kept untyped at rest — a numeric cell may be an integer,
// a float or a date, told apart only by its display format — is resolved
// here so mappers can ask for a semantic type without per-kind branching.
package cellval

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alentr/ler-excel/pkg/tabular/models"
)

// ErrorText is the sentinel AsString returns for error cells.
const ErrorText = "ERRO"

// dateLayout is the canonical textual form of a date-formatted cell,
// an ISO-8601 local date-time without zone.
const dateLayout = "2006-01-02T15:04:05"

// AsString extracts a string from a cell of any kind. Numeric values that
// are mathematically integral are formatted without a fractional part;
// date-formatted numerics render in ISO-8601 local time.
func AsString(c *models.Cell) (string, bool) {
	if c == nil {
		return "", false
	}
	switch c.Kind {
	case models.KindText:
		return c.Text, true
	case models.KindNumeric:
		if c.DateFormatted {
			return c.Time.Format(dateLayout), true
		}
		return formatNumber(c.Number), true
	case models.KindBool:
		return strconv.FormatBool(c.Bool), true
	case models.KindFormula:
		if c.Formula.IsText {
			return c.Formula.Text, true
		}
		return formatNumber(c.Formula.Number), true
	case models.KindError:
		return ErrorText, true
	default:
		return "", false
	}
}

// AsInt extracts an int from a cell. Numeric values truncate toward zero;
// text is parsed as a floating-point literal and then truncated; formula
// cells use the cached numeric result. Boolean, blank and error cells
// yield no value.
func AsInt(c *models.Cell) (int, bool) {
	if c == nil {
		return 0, false
	}
	switch c.Kind {
	case models.KindNumeric:
		return int(c.Number), true
	case models.KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	case models.KindFormula:
		if c.Formula.IsText {
			return 0, false
		}
		return int(c.Formula.Number), true
	default:
		return 0, false
	}
}

// AsFloat extracts a float64 from a cell. Text is parsed as a
// floating-point literal; formula cells use the cached numeric result.
func AsFloat(c *models.Cell) (float64, bool) {
	if c == nil {
		return 0, false
	}
	switch c.Kind {
	case models.KindNumeric:
		return c.Number, true
	case models.KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case models.KindFormula:
		if c.Formula.IsText {
			return 0, false
		}
		return c.Formula.Number, true
	default:
		return 0, false
	}
}

// AsBool extracts a bool from a cell. Numeric cells map zero to false and
// anything else to true. Text matches, case-insensitively, exactly
// {"true", "yes", "1", "sim"} for true and {"false", "no", "0", "não"} for
// false; any other text yields no value.
func AsBool(c *models.Cell) (bool, bool) {
	if c == nil {
		return false, false
	}
	switch c.Kind {
	case models.KindBool:
		return c.Bool, true
	case models.KindNumeric:
		return c.Number != 0, true
	case models.KindText:
		switch strings.ToLower(strings.TrimSpace(c.Text)) {
		case "true", "yes", "1", "sim":
			return true, true
		case "false", "no", "0", "não":
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}

// AsTime extracts the decoded date-time of a date-formatted numeric cell.
// Every other kind, including numeric cells without a date format, yields
// no value.
func AsTime(c *models.Cell) (time.Time, bool) {
	if c == nil {
		return time.Time{}, false
	}
	if c.Kind == models.KindNumeric && c.DateFormatted {
		return c.Time, true
	}
	return time.Time{}, false
}

// formatNumber renders v without a fractional part when it is integral,
// with plain decimal digits otherwise.
func formatNumber(v float64) string {
	// The magnitude guard keeps the int64 conversion exact.
	if v == math.Floor(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
