package document

// isBuiltinDateFormat reports whether a builtin number-format ID denotes a
// date or time format. IDs follow ECMA-376's implied format table.
func isBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	default:
		return false
	}
}

// isDateFormatCode reports whether a custom number-format code renders a
// date or time. Literal sections in double quotes, bracketed sections
// (colors, locale prefixes) and backslash-escaped characters carry no
// format meaning and are skipped; any remaining y/m/d/h/s token marks the
// code as a date format.
func isDateFormatCode(code string) bool {
	inQuote := false
	inBracket := false
	escaped := false
	for _, r := range code {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			if r == '"' {
				inQuote = false
			}
		case inBracket:
			if r == ']' {
				inBracket = false
			}
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		default:
			switch r {
			case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
				return true
			}
		}
	}
	return false
}
