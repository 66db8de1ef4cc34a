// Package discogs reads Discogs CSV exports and builds Discogs lookup URLs.
//
// # Exports
//
// Discogs offers two CSV exports that this package understands:
//
//	collection: Catalog#, Artist, Title, Label, Format, Rating, Released,
//	            release_id, CollectionFolder, Date Added,
//	            Collection Media Condition, Collection Sleeve Condition,
//	            Collection Notes
//	inventory:  listing_id, artist, title, label, catno, format, release_id,
//	            status, price, listed, comments, media_condition,
//	            sleeve_condition, accept_offer, external_id, weight,
//	            format_quantity, flat_shipping, location
//
// Only the identifier column differs in meaning: release_id for the
// collection, listing_id for the inventory. All other columns are opaque
// strings.
//
// # Reading
//
//	r, err := discogs.Open(path, model.ShapeInventory)
//	if err != nil {
//	    return err // *discogs.InputError
//	}
//	defer r.Close()
//	for rec, err := range r.Records() {
//	    ...
//	}
//
// # URLs
//
//	discogs.ReleaseURL("123") // https://www.discogs.com/release/123
//	discogs.ListingURL("456") // https://www.discogs.com/sell/item/456
package discogs
