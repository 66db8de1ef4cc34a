package discogs

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/handiism/discogs-labels/internal/model"
)

// Reader reads records from a Discogs CSV export.
//
// The first row holds the column names. Records are produced lazily and
// only once: Records walks the underlying stream, so a second walk yields
// nothing. Reopen the file to start over.
//
// Example:
//
//	r, err := discogs.Open("collection.csv", model.ShapeCollection)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	for rec, err := range r.Records() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(rec.Get("artist"))
//	}
type Reader struct {
	shape   model.Shape
	path    string
	headers []string
	csv     *csv.Reader
	closer  io.Closer
	line    int
	done    bool
}

// Open opens the CSV export at path and reads its header row.
func Open(path string, shape model.Shape) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newInputError(ErrCodeFileNotFound, path, 0, "CSV file does not exist", err)
		}
		return nil, newInputError(ErrCodeFileUnreadable, path, 0, "can't open CSV file", err)
	}

	r, err := newReader(f, path, shape)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader reads a CSV export from an in-memory stream.
func NewReader(src io.Reader, shape model.Shape) (*Reader, error) {
	return newReader(src, "", shape)
}

func newReader(src io.Reader, path string, shape model.Shape) (*Reader, error) {
	buf := bufio.NewReader(src)

	// UTF-8 BOM: 0xEF, 0xBB, 0xBF
	bom, err := buf.Peek(3)
	if err != nil && err != io.EOF {
		return nil, newInputError(ErrCodeFileUnreadable, path, 0, "failed to read file", err)
	}
	if len(bom) == 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	r := &Reader{
		shape: shape,
		path:  path,
		csv:   csv.NewReader(buf),
	}
	r.csv.FieldsPerRecord = -1
	r.csv.TrimLeadingSpace = true

	if err := r.readHeader(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader) readHeader() error {
	row, err := r.read()
	if err == io.EOF {
		// An empty export has no records, which is not an error.
		r.done = true
		return nil
	}
	if err != nil {
		return err
	}

	r.headers = make([]string, len(row))
	for i, h := range row {
		r.headers[i] = strings.TrimSpace(h)
	}
	return nil
}

// read returns the next raw row, validating its encoding.
func (r *Reader) read() ([]string, error) {
	row, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, newInputError(ErrCodeMalformed, r.path, parseErr.Line, "file is not a valid CSV file", parseErr.Err)
		}
		return nil, newInputError(ErrCodeFileUnreadable, r.path, r.line, "failed to read CSV file", err)
	}
	r.line, _ = r.csv.FieldPos(0)
	for _, field := range row {
		if !utf8.ValidString(field) {
			return nil, newInputError(ErrCodeMalformed, r.path, r.line, "file is not valid UTF-8", nil)
		}
	}
	return row, nil
}

// Headers returns the column names of the export.
func (r *Reader) Headers() []string {
	return r.headers
}

// Shape returns the export shape the reader was opened with.
func (r *Reader) Shape() model.Shape {
	return r.shape
}

// Records yields the data rows of the export in file order.
//
// Completely empty rows are skipped. Short rows are padded with empty
// values. Iteration stops after the first error.
func (r *Reader) Records() iter.Seq2[model.Record, error] {
	return func(yield func(model.Record, error) bool) {
		for !r.done {
			row, err := r.read()
			if err == io.EOF {
				r.done = true
				return
			}
			if err != nil {
				r.done = true
				yield(model.Record{}, err)
				return
			}
			if isBlank(row) {
				continue
			}
			if !yield(r.record(row), nil) {
				return
			}
		}
	}
}

// ReadAll collects every remaining record.
func (r *Reader) ReadAll() ([]model.Record, error) {
	var records []model.Record
	for rec, err := range r.Records() {
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *Reader) record(row []string) model.Record {
	return model.NewRowRecord(r.shape, r.line, r.headers, row)
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
