// Package layout packs labels into a grid and lays the grid out as a
// printable HTML sheet.
//
// Packing is row-major and order preserving; the last row may be short:
//
//	grid := layout.Pack(cells, profile.Columns)
//
// The sheet is a single HTML table sized from the profile. Pagination is
// left to the PDF renderer; rows are never split across pages.
//
//	html, err := layout.Sheet{Profile: profile, Grid: grid, GridLines: true}.HTML()
package layout
