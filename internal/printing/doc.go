// Package printing renders HTML documents to PDF through a headless
// Chrome driven over the DevTools protocol.
//
// Page sizes and margins are given in PostScript points. A renderer either
// launches its own browser or attaches to a running one:
//
//	r := printing.NewChromedpRenderer(&printing.ChromedpConfig{Logger: log})
//	defer r.Close()
//	res, err := r.Render(ctx, &printing.RenderRequest{HTML: html, PageWidth: 595.28, PageHeight: 841.89})
package printing
