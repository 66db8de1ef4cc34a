package label

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"html/template"
	"math"
	"strings"

	"github.com/handiism/discogs-labels/internal/config"
	"github.com/handiism/discogs-labels/internal/discogs"
	ioutils "github.com/handiism/discogs-labels/internal/io"
	"github.com/handiism/discogs-labels/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	// LineBreak separates the fields of a text block.
	LineBreak = "<br/>"

	// ConditionField is the composite field printing media and sleeve
	// grading as "v/s: <media>/<sleeve>".
	ConditionField = "condition"

	// DefaultDPI is the raster resolution of QR code images.
	DefaultDPI = 300
)

// Fallback columns for the condition field; the inventory export uses the
// first name, the collection export the second.
var (
	mediaConditionColumns  = []string{"media_condition", "Collection Media Condition"}
	sleeveConditionColumns = []string{"sleeve_condition", "Collection Sleeve Condition"}
)

// ElementKind distinguishes the two halves of a label.
type ElementKind int

const (
	KindText ElementKind = iota
	KindCode
)

// Element is one half of a label: its text block or its QR code.
type Element interface {
	Kind() ElementKind
}

// TextBlock is the descriptive text of a label, one segment per
// configured field. Segments hold raw (unescaped) values.
type TextBlock struct {
	Segments []string
}

// Kind returns KindText.
func (TextBlock) Kind() ElementKind { return KindText }

// String returns the segments HTML-escaped and joined with LineBreak.
func (t TextBlock) String() string {
	escaped := make([]string, len(t.Segments))
	for i, s := range t.Segments {
		escaped[i] = html.EscapeString(s)
	}
	return strings.Join(escaped, LineBreak)
}

// HTML returns the block as trusted markup for html/template.
func (t TextBlock) HTML() template.HTML {
	return template.HTML(t.String())
}

// CodeGraphic is the QR code of a label.
type CodeGraphic struct {
	// Payload is the URL encoded in the QR code.
	Payload string

	// Size is the printed side of the square, in profile units.
	Size float64

	// PNG is the rasterised QR code.
	PNG []byte
}

// Kind returns KindCode.
func (CodeGraphic) Kind() ElementKind { return KindCode }

// DataURL returns the PNG as a data: URL for an <img> source.
func (c CodeGraphic) DataURL() template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(c.PNG))
}

// Cell is one printed label. It is built once and never modified.
type Cell struct {
	Text    TextBlock
	Code    CodeGraphic
	Swapped bool
}

// Elements returns the two halves in print order: (text, code), or
// (code, text) when the profile swaps columns.
func (c Cell) Elements() [2]Element {
	if c.Swapped {
		return [2]Element{c.Code, c.Text}
	}
	return [2]Element{c.Text, c.Code}
}

// Builder turns records into label cells for one profile.
type Builder struct {
	profile *config.Profile
	images  *ioutils.ImageService
	dpi     int
}

// NewBuilder creates a Builder for profile.
func NewBuilder(profile *config.Profile) *Builder {
	return &Builder{
		profile: profile,
		images:  ioutils.NewImageService(),
		dpi:     DefaultDPI,
	}
}

// Build creates the label for rec.
//
// A record without its shape's identifier yields a *model.DataError.
func (b *Builder) Build(ctx context.Context, rec model.Record) (Cell, error) {
	payload, err := discogs.RecordURL(rec)
	if err != nil {
		return Cell{}, err
	}

	code, err := b.code(ctx, payload)
	if err != nil {
		return Cell{}, fmt.Errorf("line %d: render QR code: %w", rec.Line, err)
	}

	return Cell{
		Text:    Text(rec, b.profile.Fields),
		Code:    code,
		Swapped: b.profile.SwapColumns,
	}, nil
}

func (b *Builder) code(ctx context.Context, payload string) (CodeGraphic, error) {
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return CodeGraphic{}, err
	}

	png, err := b.images.RenderBitmap(ctx, qr.Bitmap(), b.pixels())
	if err != nil {
		return CodeGraphic{}, err
	}

	return CodeGraphic{
		Payload: payload,
		Size:    b.profile.CellDimension,
		PNG:     png,
	}, nil
}

// pixels is the raster side of a cell at the builder's resolution.
func (b *Builder) pixels() int {
	points := b.profile.Unit.Points(b.profile.CellDimension)
	return int(math.Ceil(points / 72 * float64(b.dpi)))
}

// Text builds the text block of rec for the given fields.
//
// Each field contributes its value verbatim. An empty "condition" field is
// replaced by the media/sleeve grading; any other empty field contributes
// an empty segment.
func Text(rec model.Record, fields []string) TextBlock {
	segments := make([]string, len(fields))
	for i, field := range fields {
		if v := rec.Get(field); v != "" {
			segments[i] = v
		} else if field == ConditionField {
			segments[i] = fmt.Sprintf("v/s: %s/%s",
				firstValue(rec, mediaConditionColumns),
				firstValue(rec, sleeveConditionColumns))
		}
	}
	return TextBlock{Segments: segments}
}

func firstValue(rec model.Record, columns []string) string {
	for _, c := range columns {
		if v := rec.Get(c); v != "" {
			return v
		}
	}
	return ""
}
