package alumni

import (
	"strings"
)

// Parse converts delimited text into records. The first line names the
// columns; each following line is one row. Blank lines are skipped and rows
// without a name or department are dropped.
func Parse(raw string) []Record {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	lines := strings.Split(raw, "\n")
	headers := tokenize(strings.TrimSuffix(lines[0], "\r"))
	if len(headers) == 0 {
		return nil
	}

	var records []Record
	for _, line := range lines[1:] {
		values := tokenize(strings.TrimSuffix(line, "\r"))
		if len(values) == 0 {
			continue
		}

		var rec Record
		for i, header := range headers {
			f := rec.field(header)
			if f == nil {
				continue
			}
			if i < len(values) {
				*f = values[i]
			}
		}

		if rec.Name == "" && rec.Department == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}

type tokenState int

const (
	stateFieldStart tokenState = iota
	stateUnquoted
	stateQuoted
	stateQuoteInQuoted
)

// tokenize splits one line into trimmed field values. A double-quoted field
// may contain commas and "" for a literal quote. An unterminated quote runs
// to the end of the line; a quote inside an unquoted field is kept as is.
// A whitespace-only line yields no tokens.
func tokenize(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	var (
		fields []string
		buf    strings.Builder
		state  = stateFieldStart
	)
	emit := func() {
		fields = append(fields, strings.TrimSpace(buf.String()))
		buf.Reset()
	}

	for _, c := range line {
		switch state {
		case stateFieldStart:
			switch {
			case c == '"':
				buf.Reset()
				state = stateQuoted
			case c == ',':
				emit()
			case c == ' ' || c == '\t':
				buf.WriteRune(c)
			default:
				buf.WriteRune(c)
				state = stateUnquoted
			}
		case stateUnquoted:
			if c == ',' {
				emit()
				state = stateFieldStart
				continue
			}
			buf.WriteRune(c)
		case stateQuoted:
			if c == '"' {
				state = stateQuoteInQuoted
				continue
			}
			buf.WriteRune(c)
		case stateQuoteInQuoted:
			switch c {
			case '"':
				buf.WriteRune('"')
				state = stateQuoted
			case ',':
				emit()
				state = stateFieldStart
			default:
				// Text after a closing quote belongs to the same field.
				buf.WriteRune(c)
				state = stateUnquoted
			}
		}
	}
	emit()
	return fields
}
