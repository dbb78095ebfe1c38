// Package export turns list views into CSV files and stores them, either
// in a local directory or in an S3-compatible bucket.
package export

import (
	"strings"
)

const (
	ContentType = "text/csv;charset=utf-8"
	// Missing is written in place of empty values.
	Missing = "N/A"
)

// Blob is a finished export.
type Blob struct {
	Name        string
	ContentType string
	Data        []byte
}

// CSV renders header and rows with every field quoted and rows separated
// by a single newline. Empty data values are written as Missing.
func CSV(header []string, rows [][]string) []byte {
	var b strings.Builder
	writeRow(&b, header, false)
	for _, r := range rows {
		b.WriteByte('\n')
		writeRow(&b, r, true)
	}
	return []byte(b.String())
}

// NewBlob wraps a CSV document.
func NewBlob(name string, header []string, rows [][]string) Blob {
	return Blob{Name: name, ContentType: ContentType, Data: CSV(header, rows)}
}

func writeRow(b *strings.Builder, fields []string, fill bool) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if fill && f == "" {
			f = Missing
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}
