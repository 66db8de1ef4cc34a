package layout

import "github.com/handiism/discogs-labels/internal/label"

// Grid is a row-major matrix of labels. Every row holds exactly the
// packer's column count, except possibly the last one.
type Grid [][]label.Cell

// Len returns the number of labels in the grid.
func (g Grid) Len() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}

// Packer accumulates labels into rows of a fixed width.
//
// Labels keep their insertion order. The number of rows is not capped:
// overflow beyond one physical sheet is left to pagination.
type Packer struct {
	columns int
	rows    Grid
	current []label.Cell
}

// NewPacker creates a Packer emitting rows of columns labels.
// Values below 1 are treated as 1.
func NewPacker(columns int) *Packer {
	if columns < 1 {
		columns = 1
	}
	return &Packer{columns: columns}
}

// Add appends a label, closing the current row when it is full.
func (p *Packer) Add(cell label.Cell) {
	p.current = append(p.current, cell)
	if len(p.current) == p.columns {
		p.rows = append(p.rows, p.current)
		p.current = nil
	}
}

// Grid returns the packed rows, including a trailing short row if one is
// pending. The packer can keep accepting labels afterwards.
func (p *Packer) Grid() Grid {
	grid := make(Grid, len(p.rows), len(p.rows)+1)
	copy(grid, p.rows)
	if len(p.current) > 0 {
		grid = append(grid, append([]label.Cell(nil), p.current...))
	}
	return grid
}

// Pack packs cells into rows of columns labels.
func Pack(cells []label.Cell, columns int) Grid {
	p := NewPacker(columns)
	for _, c := range cells {
		p.Add(c)
	}
	return p.Grid()
}
