// Package generate runs the whole label pipeline for one export.
//
// # Manager
//
// The Manager coordinates a run:
//
//  1. Open the CSV export in the requested shape
//  2. Build one label per record, in file order
//  3. Pack the labels into rows of the profile's column count
//  4. Lay the rows out as an HTML sheet
//  5. Render the sheet to PDF and write it atomically
//
// # Basic Usage
//
//	manager := generate.NewManager(profile, renderer, func(event generate.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := manager.Run(ctx, generate.Options{
//	    InputPath:  "collection.csv",
//	    OutputPath: "labels.pdf",
//	    Shape:      model.ShapeCollection,
//	    GridLines:  true,
//	})
//
// An export without data rows is not an error: Run returns a Result with
// Written set to false and creates no file.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package generate
