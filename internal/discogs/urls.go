package discogs

import (
	"net/url"

	"github.com/handiism/discogs-labels/internal/model"
)

const (
	// ReleaseURLPrefix is the Discogs release page prefix.
	ReleaseURLPrefix = "https://www.discogs.com/release/"

	// ListingURLPrefix is the Discogs marketplace listing page prefix.
	ListingURLPrefix = "https://www.discogs.com/sell/item/"
)

// ReleaseURL returns the release page for a collection release_id.
func ReleaseURL(releaseID string) string {
	return ReleaseURLPrefix + url.PathEscape(releaseID)
}

// ListingURL returns the marketplace page for an inventory listing_id.
func ListingURL(listingID string) string {
	return ListingURLPrefix + url.PathEscape(listingID)
}

// RecordURL returns the lookup URL for a record, based on its shape.
//
// Records without an identifier yield a *model.DataError.
func RecordURL(rec model.Record) (string, error) {
	id, err := rec.Identifier()
	if err != nil {
		return "", err
	}
	if rec.Shape == model.ShapeInventory {
		return ListingURL(id), nil
	}
	return ReleaseURL(id), nil
}
