package rows

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/arcanaland/cardtags/internal/fileutil"
)

var (
	// ErrFileAccess is returned when the source file cannot be used
	ErrFileAccess = fileutil.ErrFileAccess
	// ErrFormat is returned when a line is not valid UTF-8 CSV
	ErrFormat = errors.New("format error")
)

// Row is one line of the source sheet
type Row []string

// Name returns the first field, or "" when the row has no fields
func (r Row) Name() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// Tail returns the fields after the name, skipping skip additional columns
func (r Row) Tail(skip int) []string {
	start := 1 + skip
	if start >= len(r) {
		return nil
	}
	return r[start:]
}

// Reader reads rows lazily from a CSV source
type Reader struct {
	csv    *csv.Reader
	closer io.Closer
	path   string
	line   int
}

// NewReader returns a Reader over r
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	// Rows carry a variable number of tag columns
	cr.FieldsPerRecord = -1
	return &Reader{csv: cr}
}

// Open opens the CSV file at path
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrFileAccess, path, err)
	}

	r := NewReader(f)
	r.closer = f
	r.path = path
	return r, nil
}

// Next returns the next row, or io.EOF when the source is exhausted
func (r *Reader) Next() (Row, error) {
	record, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrFormat, r.source(), parseErr.StartLine, parseErr.Err)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFileAccess, r.source(), err)
	}

	for i, field := range record {
		if !utf8.ValidString(field) {
			line, _ := r.csv.FieldPos(i)
			return nil, fmt.Errorf("%w: %s line %d: invalid UTF-8", ErrFormat, r.source(), line)
		}
	}

	r.line++
	return Row(record), nil
}

// Rows returns the number of rows read so far
func (r *Reader) Rows() int {
	return r.line
}

// Close releases the underlying file, if the Reader owns one
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

func (r *Reader) source() string {
	if r.path == "" {
		return "input"
	}
	return r.path
}
