package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/handiism/discogs-labels/internal/config"
	"github.com/handiism/discogs-labels/internal/discogs"
	ioutils "github.com/handiism/discogs-labels/internal/io"
	"github.com/handiism/discogs-labels/internal/label"
	"github.com/handiism/discogs-labels/internal/layout"
	"github.com/handiism/discogs-labels/internal/model"
	"github.com/handiism/discogs-labels/internal/printing"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

func (l ProgressLevel) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// ProgressEvent represents a generation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// ErrNoOutput is returned by Run when Options has no output path.
var ErrNoOutput = errors.New("no output path given")

// Options selects the input, the output and the per-run switches.
type Options struct {
	InputPath  string
	OutputPath string
	Shape      model.Shape

	// SkipInvalid drops rows without an identifier instead of failing.
	SkipInvalid bool
	// GridLines draws the cell borders.
	GridLines bool
	// HTMLPath, when set, also receives the laid out sheet.
	HTMLPath string
	Title    string
	// Timeout bounds the PDF rendering; zero uses the renderer default.
	Timeout time.Duration
}

// Result summarises a run.
type Result struct {
	Labels     int
	Skipped    int
	Rows       int
	Pages      int
	Written    bool
	OutputPath string
	Duration   time.Duration
}

// Manager turns one CSV export into one label sheet.
type Manager struct {
	profile  *config.Profile
	renderer printing.PDFRenderer
	builder  *label.Builder

	built      atomic.Int32
	onProgress func(ProgressEvent)
}

// NewManager creates a Manager for profile. The renderer is not closed by
// the Manager.
func NewManager(profile *config.Profile, renderer printing.PDFRenderer, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		profile:    profile,
		renderer:   renderer,
		builder:    label.NewBuilder(profile),
		onProgress: onProgress,
	}
}

// Progress returns the number of labels built so far in the current run.
func (m *Manager) Progress() int {
	return int(m.built.Load())
}

// Run reads the export, builds the labels and writes the PDF.
//
// Nothing is written when the export has no data rows or when any step
// fails. Errors are returned unchanged so callers can inspect them with
// errors.As.
func (m *Manager) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.OutputPath == "" {
		return nil, ErrNoOutput
	}

	start := time.Now()
	m.built.Store(0)
	result := &Result{OutputPath: opts.OutputPath}

	grid, err := m.buildGrid(ctx, opts, result)
	if err != nil {
		return nil, err
	}

	result.Labels = grid.Len()
	result.Rows = len(grid)
	if result.Labels == 0 {
		m.progress(ProgressEvent{Message: "No records found, nothing to print", Level: LevelWarning})
		result.Duration = time.Since(start)
		return result, nil
	}

	sheet := layout.Sheet{
		Profile:   m.profile,
		Grid:      grid,
		GridLines: opts.GridLines,
		Title:     opts.Title,
	}
	html, err := sheet.HTML()
	if err != nil {
		return nil, err
	}

	if opts.HTMLPath != "" {
		if err := ioutils.WriteFile(ctx, opts.HTMLPath, []byte(html)); err != nil {
			return nil, fmt.Errorf("write HTML sheet: %w", err)
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote HTML sheet to %s", opts.HTMLPath), Level: LevelVerbose})
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Rendering %d labels in %d rows", result.Labels, result.Rows), Level: LevelInfo})

	rendered, err := m.renderer.Render(ctx, &printing.RenderRequest{
		HTML:       html,
		PageWidth:  m.profile.PageSize.Width,
		PageHeight: m.profile.PageSize.Height,
		Timeout:    opts.Timeout,
	})
	if err != nil {
		return nil, err
	}
	result.Pages = rendered.PageCount

	if err := ioutils.EnsureDir(filepath.Dir(opts.OutputPath)); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	if err := ioutils.WriteFileAtomic(ctx, opts.OutputPath, rendered.PDFData); err != nil {
		return nil, fmt.Errorf("write %s: %w", opts.OutputPath, err)
	}

	result.Written = true
	result.Duration = time.Since(start)
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Wrote %d labels on %d page(s) to %s", result.Labels, result.Pages, opts.OutputPath),
		Level:   LevelSuccess,
	})

	return result, nil
}

func (m *Manager) buildGrid(ctx context.Context, opts Options, result *Result) (layout.Grid, error) {
	reader, err := discogs.Open(opts.InputPath, opts.Shape)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	m.progress(ProgressEvent{Message: fmt.Sprintf("Reading %s export %s", opts.Shape, opts.InputPath), Level: LevelVerbose})

	packer := layout.NewPacker(m.profile.Columns)
	for rec, err := range reader.Records() {
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cell, err := m.builder.Build(ctx, rec)
		if err != nil {
			var dataErr *model.DataError
			if opts.SkipInvalid && errors.As(err, &dataErr) {
				result.Skipped++
				m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %v", dataErr), Level: LevelWarning})
				continue
			}
			return nil, err
		}

		packer.Add(cell)
		m.built.Add(1)
	}

	if err := reader.Close(); err != nil {
		return nil, err
	}

	return packer.Grid(), nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
