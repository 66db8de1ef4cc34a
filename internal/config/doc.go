// Package config resolves label profiles from an INI configuration file.
//
// A configuration file holds an optional [general] section with shared
// defaults and one section per label sheet ("profile"):
//
//	[general]
//	swap-columns = yes
//
//	[avery-l7160]
//	type = sheet
//	pagesize = A4
//	rows = 8
//	columns = 3
//	fields = artist:title:condition
//
//	[zebra]
//	type = roll
//	unit = mm
//	width = 50
//	height = 40
//
// # Resolving a Profile
//
//	profile, err := config.LoadProfile("labels.cfg", "avery-l7160")
//	if err != nil {
//	    var cfgErr *config.Error
//	    if errors.As(err, &cfgErr) && cfgErr.Code == config.ErrCodeUnknownProfile {
//	        // ...
//	    }
//	}
//
// # Recognized Keys
//
//   - type: required marker in every profile section
//   - pagesize: "A4" selects A4 in millimeters with 35 mm cells
//   - width, height: integer page size when pagesize is not A4
//   - unit: "mm" for millimeters, points otherwise
//   - rows, columns: sheet grid, default 1
//   - fields: colon-separated CSV columns, default artist:title
//   - swap-columns: "yes" prints the QR code before the text
//
// swap-columns, unit, rows, columns and fields may appear in [general];
// the profile section overrides them.
package config
