package model

import (
	"maps"
	"slices"
	"strings"
)

// Shape identifies which Discogs export a CSV file follows.
//
// The two exports differ in their column set, but for label printing the
// only thing that matters is which column carries the identifier used to
// build the lookup URL:
//   - ShapeCollection: "release_id" (collection export)
//   - ShapeInventory: "listing_id" (marketplace inventory export)
type Shape int

const (
	// ShapeCollection is the Discogs collection export (default).
	ShapeCollection Shape = iota

	// ShapeInventory is the Discogs marketplace inventory export.
	ShapeInventory
)

// ShapeFor returns ShapeInventory when inventory is true and
// ShapeCollection otherwise.
func ShapeFor(inventory bool) Shape {
	if inventory {
		return ShapeInventory
	}
	return ShapeCollection
}

// IDField returns the name of the identifier column for the shape.
func (s Shape) IDField() string {
	if s == ShapeInventory {
		return "listing_id"
	}
	return "release_id"
}

// String returns "collection" or "inventory".
func (s Shape) String() string {
	if s == ShapeInventory {
		return "inventory"
	}
	return "collection"
}

// Record is one row of a Discogs CSV export.
//
// A Record maps header names to cell values. It is immutable once created:
// NewRecord copies the supplied map and Record exposes no setters.
//
// Field lookups first try the exact header name and then fall back to a
// case-insensitive match, so a profile asking for "artist" finds the
// "Artist" column of a collection export. When several headers match
// case-insensitively, the first one in column order wins.
//
// Example:
//
//	rec := NewRecord(ShapeCollection, 2, map[string]string{
//	    "release_id": "123",
//	    "Artist":     "Autechre",
//	})
//	rec.Get("artist") // "Autechre"
type Record struct {
	// Line is the 1-indexed line of the row in its source file
	// (the header is line 1). Zero for records built in memory.
	Line int

	// Shape is the export the row was read from.
	Shape Shape

	headers []string
	fields  map[string]string
}

// NewRecord creates a Record of the given shape from a header→value map.
// Columns are ordered by name.
func NewRecord(shape Shape, line int, fields map[string]string) Record {
	return Record{
		Line:    line,
		Shape:   shape,
		headers: slices.Sorted(maps.Keys(fields)),
		fields:  maps.Clone(fields),
	}
}

// NewRowRecord creates a Record from a CSV row and its header row, keeping
// the column order. Missing trailing values are empty; for a repeated
// header the first column wins.
func NewRowRecord(shape Shape, line int, headers, row []string) Record {
	rec := Record{
		Line:    line,
		Shape:   shape,
		headers: make([]string, 0, len(headers)),
		fields:  make(map[string]string, len(headers)),
	}
	for i, header := range headers {
		if _, dup := rec.fields[header]; dup {
			continue
		}
		value := ""
		if i < len(row) {
			value = strings.TrimSpace(row[i])
		}
		rec.headers = append(rec.headers, header)
		rec.fields[header] = value
	}
	return rec
}

// Get returns the value stored under name, or "" if the record has no
// such column.
func (r Record) Get(name string) string {
	v, _ := r.Lookup(name)
	return v
}

// Lookup returns the value stored under name and whether the column exists.
func (r Record) Lookup(name string) (string, bool) {
	if v, ok := r.fields[name]; ok {
		return v, true
	}
	for _, header := range r.headers {
		if strings.EqualFold(header, name) {
			return r.fields[header], true
		}
	}
	return "", false
}

// Identifier returns the shape-specific identifier of the record.
//
// A missing column or an empty value is reported as a *DataError, since no
// lookup URL can be built from it.
func (r Record) Identifier() (string, error) {
	field := r.Shape.IDField()
	id, ok := r.Lookup(field)
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return "", NewDataError(ErrCodeMissingIdentifier, r.Line, field, "record has no "+field)
	}
	return id, nil
}

// Len returns the number of columns in the record.
func (r Record) Len() int {
	return len(r.headers)
}

// Headers returns the column names in order.
func (r Record) Headers() []string {
	return slices.Clone(r.headers)
}
