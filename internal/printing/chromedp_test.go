package printing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChromedpRenderer_Defaults(t *testing.T) {
	r := NewChromedpRenderer(nil)
	defer r.Close()

	assert.Equal(t, defaultChromeTimeout, r.config.DefaultTimeout)
	assert.Equal(t, defaultScale, r.config.Scale)
	assert.NotNil(t, r.logger)
	assert.NotNil(t, r.allocCtx)
}

func TestNewChromedpRenderer_Remote(t *testing.T) {
	r := NewChromedpRenderer(&ChromedpConfig{
		RemoteURL:      "ws://127.0.0.1:9222",
		DefaultTimeout: time.Second,
	})
	defer r.Close()

	assert.Equal(t, time.Second, r.config.DefaultTimeout)
	assert.NotNil(t, r.allocCancel)
}

func TestChromedpRenderer_BuildPrintParams(t *testing.T) {
	r := &ChromedpRenderer{config: &ChromedpConfig{Scale: 1.0}}

	tests := []struct {
		name       string
		req        *RenderRequest
		wantWidth  float64
		wantHeight float64
		wantTop    float64
	}{
		{
			name:       "A4 without margins",
			req:        &RenderRequest{PageWidth: 595.28, PageHeight: 841.89},
			wantWidth:  8.268,
			wantHeight: 11.693,
			wantTop:    0,
		},
		{
			name:       "letter with half inch top margin",
			req:        &RenderRequest{PageWidth: 612, PageHeight: 792, Margins: Margins{Top: 36}},
			wantWidth:  8.5,
			wantHeight: 11,
			wantTop:    0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := r.buildPrintParams(tt.req)

			assert.InDelta(t, tt.wantWidth, params.paperWidth, 0.001)
			assert.InDelta(t, tt.wantHeight, params.paperHeight, 0.001)
			assert.InDelta(t, tt.wantTop, params.marginTop, 0.001)
			assert.Equal(t, 0.0, params.marginLeft)
			assert.Equal(t, 1.0, params.scale)
			assert.True(t, params.printBackground)
			assert.False(t, params.preferCSSPageSize)
		})
	}
}

func TestChromedpRenderer_RenderRejectsInvalidRequests(t *testing.T) {
	r := &ChromedpRenderer{config: &ChromedpConfig{Scale: 1.0}}

	tests := []struct {
		name string
		req  *RenderRequest
		code string
	}{
		{"nil request", nil, ErrCodeInvalidHTML},
		{"empty html", &RenderRequest{HTML: "  ", PageWidth: 10, PageHeight: 10}, ErrCodeInvalidHTML},
		{"zero width", &RenderRequest{HTML: "<p>x</p>", PageHeight: 10}, ErrCodeInvalidPaperSize},
		{"negative margin", &RenderRequest{HTML: "<p>x</p>", PageWidth: 10, PageHeight: 10, Margins: Margins{Top: -1}}, ErrCodeInvalidMargins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(context.Background(), tt.req)
			require.Error(t, err)

			var renderErr *RenderError
			require.True(t, errors.As(err, &renderErr))
			assert.Equal(t, tt.code, renderErr.Code)
		})
	}
}

func TestChromedpRenderer_Close(t *testing.T) {
	r := &ChromedpRenderer{config: &ChromedpConfig{}}
	assert.NoError(t, r.Close())
}

func TestRenderError(t *testing.T) {
	cause := errors.New("boom")
	err := NewRenderError(ErrCodeRenderFailed, "chromedp execution failed", cause)

	assert.Equal(t, "chromedp execution failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "HTML content is empty", NewRenderError(ErrCodeInvalidHTML, "HTML content is empty", nil).Error())
}

func TestEstimatePageCount(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{"no markers", "%PDF-1.4", 1},
		{"two pages", "<< /Type /Pages >> << /Type /Page >> << /Type /Page >>", 2},
		{"one page", "<< /Type /Pages >> << /Type /Page >>", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimatePageCount([]byte(tt.data)))
		})
	}
}
