// Package record implements the delimited flat-record format shared by all
// backing files: one record per line, fields joined by a store-specific
// delimiter. Values containing the delimiter are not escaped; that is a
// limitation of the file format itself, inherited from the data already on
// disk, and the codec does not attempt to work around it.
package record

import "strings"

// Codec splits and joins one line of a backing file. Each store owns one
// Codec configured with its delimiter and the minimum number of fields a
// line must carry to be usable.
type Codec struct {
	Delimiter string
	MinFields int
}

// Decode splits line into trimmed fields. The second return value is false
// when the line is blank or carries fewer than MinFields fields; such lines
// are skipped by callers, never treated as errors, so partially written or
// legacy files stay readable.
func (c Codec) Decode(line string) ([]string, bool) {
	if strings.TrimSpace(line) == "" {
		return nil, false
	}

	parts := strings.Split(line, c.Delimiter)
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(p)
	}

	if len(fields) < c.MinFields {
		return fields, false
	}
	return fields, true
}

// Encode joins fields into one line. Exact inverse of Decode for fields
// that contain neither the delimiter nor leading/trailing whitespace.
func (c Codec) Encode(fields []string) string {
	return strings.Join(fields, c.Delimiter)
}

// Field returns fields[i], or def when the record is too short to carry the
// optional trailing field at that position.
func Field(fields []string, i int, def string) string {
	if i < len(fields) {
		return fields[i]
	}
	return def
}
