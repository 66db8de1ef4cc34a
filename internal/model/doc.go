// Package model defines the core data structures shared by the
// discogs-labels packages.
//
// # Shape
//
// Shape tells which Discogs CSV export a file follows and therefore which
// column identifies a row:
//
//	model.ShapeCollection.IDField() // "release_id"
//	model.ShapeInventory.IDField()  // "listing_id"
//
// # Record
//
// Record is one immutable CSV row. Lookups are exact first and then
// case-insensitive:
//
//	rec := model.NewRecord(model.ShapeInventory, 2, map[string]string{
//	    "listing_id": "456",
//	    "artist":     "Boards of Canada",
//	})
//	id, err := rec.Identifier() // "456", nil
//
// # Errors
//
// A record without its identifier yields a *DataError from Identifier.
package model
