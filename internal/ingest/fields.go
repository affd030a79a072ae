package ingest

import "strings"

// SplitFields splits one comma-delimited line. Double quotes toggle a quoted
// span in which commas are literal; the quote characters themselves are
// dropped and each field is trimmed. There is no escape for a quote inside a
// quoted span, and an unterminated quote runs to the end of the line. Bytes
// other than the delimiter and quote pass through unchanged, valid UTF-8 or not.
func SplitFields(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	return append(fields, strings.TrimSpace(current.String()))
}

// field returns the value at position i, or "" when the row is too short or
// the column is disabled.
func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}
