package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"collection.csv", "collection.pdf"},
		{"/crates/inventory.export.csv", "/crates/inventory.export.pdf"},
		{"noext", "noext.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultOutput(tt.input))
		})
	}
}

func TestRequiredFlags(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"-c", "labels.cfg"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}
