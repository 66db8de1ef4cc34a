package layout

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"github.com/handiism/discogs-labels/internal/config"
	"github.com/handiism/discogs-labels/internal/label"
)

//go:embed templates/sheet.html
var templateFS embed.FS

var sheetTemplate = template.Must(template.ParseFS(templateFS, "templates/sheet.html"))

const (
	// rowPadding is added to the cell side to get the row height, in
	// profile units.
	rowPadding = 2

	// topOffset pulls the sheet up to use the printer's dead zone, in
	// profile units.
	topOffset = -4

	// DefaultTitle is the document title when none is set.
	DefaultTitle = "Discogs labels"
)

// Sheet lays a grid of labels out as a printable HTML page.
//
// Every label spans two table columns (text and QR code), each one cell
// dimension wide; rows are two units taller than a cell. The page itself
// has no margins, and the table is shifted up by four units.
type Sheet struct {
	Profile   *config.Profile
	Grid      Grid
	GridLines bool
	Title     string
}

// CellWidth returns the width of one table column, in points.
func (s Sheet) CellWidth() float64 {
	return s.Profile.Unit.Points(s.Profile.CellDimension)
}

// RowHeight returns the height of one table row, in points.
func (s Sheet) RowHeight() float64 {
	return s.Profile.Unit.Points(s.Profile.CellDimension + rowPadding)
}

// TopOffset returns the (negative) top margin of the sheet, in points.
func (s Sheet) TopOffset() float64 {
	return s.Profile.Unit.Points(topOffset)
}

type elementView struct {
	IsCode bool
	Text   template.HTML
	Src    template.URL
	Alt    string
}

type sheetView struct {
	Title      string
	PageWidth  template.CSS
	PageHeight template.CSS
	TopOffset  template.CSS
	CellWidth  template.CSS
	RowHeight  template.CSS
	CodeSize   template.CSS
	GridLines  bool
	Rows       [][]elementView
}

// HTML renders the sheet as a standalone HTML document.
func (s Sheet) HTML() (string, error) {
	if s.Profile == nil {
		return "", fmt.Errorf("sheet has no profile")
	}

	title := s.Title
	if title == "" {
		title = DefaultTitle
	}

	view := sheetView{
		Title:      title,
		PageWidth:  points(s.Profile.PageSize.Width),
		PageHeight: points(s.Profile.PageSize.Height),
		TopOffset:  points(s.TopOffset()),
		CellWidth:  points(s.CellWidth()),
		RowHeight:  points(s.RowHeight()),
		CodeSize:   points(s.CellWidth()),
		GridLines:  s.GridLines,
		Rows:       make([][]elementView, 0, len(s.Grid)),
	}

	for _, row := range s.Grid {
		elements := make([]elementView, 0, 2*len(row))
		for _, cell := range row {
			for _, el := range cell.Elements() {
				elements = append(elements, viewOf(el))
			}
		}
		view.Rows = append(view.Rows, elements)
	}

	var buf bytes.Buffer
	if err := sheetTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render sheet: %w", err)
	}
	return buf.String(), nil
}

func viewOf(el label.Element) elementView {
	switch e := el.(type) {
	case label.CodeGraphic:
		return elementView{IsCode: true, Src: e.DataURL(), Alt: e.Payload}
	case label.TextBlock:
		return elementView{Text: e.HTML()}
	}
	return elementView{}
}

func points(v float64) template.CSS {
	return template.CSS(strconv.FormatFloat(v, 'f', 2, 64) + "pt")
}
