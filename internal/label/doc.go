// Package label builds printable labels from Discogs export records.
//
// A label (Cell) has two halves: a text block with the configured fields
// and a QR code linking to the record on Discogs. The profile decides the
// order of the halves.
//
//	b := label.NewBuilder(profile)
//	cell, err := b.Build(ctx, rec)
//	if err != nil {
//	    // *model.DataError when rec has no release_id / listing_id
//	}
//	cell.Text.String()  // "Autechre<br/>Amber"
//	cell.Code.Payload   // "https://www.discogs.com/release/123"
//	cell.Elements()     // [text, code] or [code, text]
package label
