// Command discogs-labels prints a Discogs CSV export as a PDF sheet of QR
// code labels.
//
//	discogs-labels -c labels.cfg -f collection.csv -o labels.pdf -p avery-l7160
//	discogs-labels -c labels.cfg -f inventory.csv -o labels.pdf -p zebra -i
//
// Each label carries a QR code linking to the release (collection) or the
// marketplace listing (inventory) next to the configured text fields. An
// export without data rows exits successfully without writing a file.
//
// The PDF is printed by a headless Chrome, launched on demand or reached
// through --chrome-url.
package main
