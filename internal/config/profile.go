package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// GeneralSection is the section holding defaults shared by all profiles.
const GeneralSection = "general"

// Unit is a length unit, expressed as PostScript points per unit.
type Unit float64

const (
	// Point is the base unit (1/72 inch).
	Point Unit = 1

	// Millimeter is 72/25.4 points.
	Millimeter Unit = 72 / 25.4
)

// String returns "mm" or "pt".
func (u Unit) String() string {
	if u == Millimeter {
		return "mm"
	}
	return "pt"
}

// Points converts v units to points.
func (u Unit) Points(v float64) float64 {
	return v * float64(u)
}

// PageSize is a page size in points. Name is set for standard sizes.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// A4 is the ISO A4 page, 210 x 297 mm.
var A4 = PageSize{
	Name:   "A4",
	Width:  float64(210 * Millimeter),
	Height: float64(297 * Millimeter),
}

const (
	// a4CellDimension is the label side used on A4 sheets, in millimeters.
	a4CellDimension = 35

	// cellMargin is subtracted from the shorter page side to get the cell
	// side of a custom page.
	cellMargin = 5
)

// DefaultFields are printed when a profile selects no fields.
var DefaultFields = []string{"artist", "title"}

// Profile is a fully resolved label layout.
//
// Profiles are built by File.Profile and never modified afterwards;
// Fields is a private copy.
type Profile struct {
	// Name is the configuration section the profile came from.
	Name string

	// Type is the value of the section's "type" marker.
	Type string

	// PageSize is the physical page, in points.
	PageSize PageSize

	// Unit scales CellDimension (and every other layout length) to points.
	Unit Unit

	// CellDimension is the side of a square label cell, in Unit.
	CellDimension float64

	// Rows and Columns describe the physical sheet. Columns drives the
	// grid; Rows is informational.
	Rows    int
	Columns int

	// Fields are the CSV columns printed on each label, in order.
	Fields []string

	// SwapColumns puts the QR code before the text when true.
	SwapColumns bool
}

// File is a parsed configuration file.
type File struct {
	path string
	ini  *ini.File
}

// Load reads and parses the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewError(ErrCodeFileNotFound, "configuration file does not exist", err)
		}
		return nil, NewError(ErrCodeFileUnreadable, "configuration file not readable", err)
	}

	return Parse(path, data)
}

// Parse parses configuration data; name is only used in messages.
func Parse(name string, data []byte) (*File, error) {
	f, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, data)
	if err != nil {
		return nil, NewError(ErrCodeFileUnreadable, fmt.Sprintf("configuration file %s not readable", name), err)
	}
	return &File{path: name, ini: f}, nil
}

// LoadProfile loads the file at path and resolves the profile name.
func LoadProfile(path, name string) (*Profile, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return f.Profile(name)
}

// Path returns the file the configuration was read from.
func (f *File) Path() string {
	return f.path
}

// ProfileNames returns the selectable profiles in file order.
func (f *File) ProfileNames() []string {
	var names []string
	for _, name := range f.ini.SectionStrings() {
		if name == ini.DefaultSection || name == GeneralSection {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Profile resolves the named profile.
//
// Resolution runs in two passes: shared defaults are collected from the
// general section, then the profile section is laid over them. The
// profile section must carry a "type" key.
func (f *File) Profile(name string) (*Profile, error) {
	if name == "" || name == GeneralSection || name == ini.DefaultSection {
		return nil, NewError(ErrCodeUnknownProfile, fmt.Sprintf("unknown profile %q: section is reserved", name), nil)
	}
	section, err := f.ini.GetSection(name)
	if err != nil {
		return nil, NewError(ErrCodeUnknownProfile, fmt.Sprintf("unknown profile %q", name), nil)
	}
	if !section.HasKey("type") {
		return nil, NewError(ErrCodeMissingType, fmt.Sprintf("profile %q missing required 'type' key", name), nil)
	}

	values := f.sharedDefaults()
	for _, key := range section.Keys() {
		values[key.Name()] = key.String()
	}

	return resolve(name, values)
}

// sharedKeys may be set in the general section.
var sharedKeys = []string{"swap-columns", "unit", "rows", "columns", "fields"}

func (f *File) sharedDefaults() map[string]string {
	values := make(map[string]string)
	general, err := f.ini.GetSection(GeneralSection)
	if err != nil {
		return values
	}
	for _, key := range sharedKeys {
		if general.HasKey(key) {
			values[key] = general.Key(key).String()
		}
	}
	return values
}

func resolve(name string, values map[string]string) (*Profile, error) {
	p := &Profile{
		Name:        name,
		Type:        values["type"],
		Unit:        Point,
		Rows:        positiveInt(values["rows"]),
		Columns:     positiveInt(values["columns"]),
		Fields:      parseFields(values["fields"]),
		SwapColumns: values["swap-columns"] == "yes",
	}

	if values["unit"] == "mm" {
		p.Unit = Millimeter
	}

	if values["pagesize"] == A4.Name {
		p.PageSize = A4
		p.Unit = Millimeter
		p.CellDimension = a4CellDimension
		return p, nil
	}

	height, err := dimension(name, "height", values)
	if err != nil {
		return nil, err
	}
	width, err := dimension(name, "width", values)
	if err != nil {
		return nil, err
	}

	p.CellDimension = float64(min(width, height) - cellMargin)
	if p.CellDimension <= 0 {
		return nil, NewError(ErrCodeInvalidDimension,
			fmt.Sprintf("profile %q: page %dx%d too small for a label", name, width, height), nil)
	}
	p.PageSize = PageSize{
		Width:  p.Unit.Points(float64(width)),
		Height: p.Unit.Points(float64(height)),
	}

	return p, nil
}

func dimension(profile, key string, values map[string]string) (int, error) {
	raw, ok := values[key]
	if !ok {
		return 0, NewError(ErrCodeInvalidDimension,
			fmt.Sprintf("profile %q: %s is required when no pagesize is set", profile, key), nil)
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, NewError(ErrCodeInvalidDimension,
			fmt.Sprintf("profile %q: invalid %s %q", profile, key, raw), err)
	}
	return v, nil
}

// positiveInt parses raw, falling back to 1 for absent, malformed or
// non-positive values.
func positiveInt(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

func parseFields(raw string) []string {
	var fields []string
	for _, field := range strings.Split(raw, ":") {
		if field = strings.TrimSpace(field); field != "" {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return append([]string(nil), DefaultFields...)
	}
	return fields
}
