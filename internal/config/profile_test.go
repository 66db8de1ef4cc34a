package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[general]
swap-columns = yes

[avery]
type = sheet
pagesize = A4
rows = 8
columns = 3

[custom]
type = roll
unit = mm
width = 60
height = 40
columns = 2
fields = artist:title:condition

[points]
type = roll
width = 200
height = 150
rows = many

[notype]
pagesize = A4

[nowidth]
type = roll
height = 40

[badheight]
type = roll
width = 40
height = forty

[tiny]
type = roll
width = 5
height = 40

[emptyfields]
type = roll
width = 50
height = 50
fields = :
`

func parseTestConfig(t *testing.T, data string) *File {
	t.Helper()
	f, err := Parse("test.cfg", []byte(data))
	require.NoError(t, err)
	return f
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr), "expected *config.Error, got %v", err)
	assert.Equal(t, code, cfgErr.Code)
}

func TestProfile_A4(t *testing.T) {
	f := parseTestConfig(t, testConfig)

	p, err := f.Profile("avery")

	require.NoError(t, err)
	assert.Equal(t, "avery", p.Name)
	assert.Equal(t, "sheet", p.Type)
	assert.Equal(t, A4, p.PageSize)
	assert.Equal(t, Millimeter, p.Unit)
	assert.Equal(t, 35.0, p.CellDimension)
	assert.Equal(t, 8, p.Rows)
	assert.Equal(t, 3, p.Columns)
	assert.Equal(t, []string{"artist", "title"}, p.Fields)
	assert.True(t, p.SwapColumns, "swap-columns comes from [general]")
}

func TestProfile_CustomSize(t *testing.T) {
	f := parseTestConfig(t, testConfig)

	t.Run("millimeters", func(t *testing.T) {
		p, err := f.Profile("custom")

		require.NoError(t, err)
		assert.Equal(t, Millimeter, p.Unit)
		assert.Equal(t, 35.0, p.CellDimension) // min(60, 40) - 5
		assert.Empty(t, p.PageSize.Name)
		assert.InDelta(t, 60*72/25.4, p.PageSize.Width, 0.001)
		assert.InDelta(t, 40*72/25.4, p.PageSize.Height, 0.001)
		assert.Equal(t, 1, p.Rows)
		assert.Equal(t, 2, p.Columns)
		assert.Equal(t, []string{"artist", "title", "condition"}, p.Fields)
	})

	t.Run("points", func(t *testing.T) {
		p, err := f.Profile("points")

		require.NoError(t, err)
		assert.Equal(t, Point, p.Unit)
		assert.Equal(t, 145.0, p.CellDimension)
		assert.Equal(t, PageSize{Width: 200, Height: 150}, p.PageSize)
		assert.Equal(t, 1, p.Rows, "unparsable rows default to 1")
		assert.Equal(t, 1, p.Columns)
	})

	t.Run("empty fields fall back to defaults", func(t *testing.T) {
		p, err := f.Profile("emptyfields")

		require.NoError(t, err)
		assert.Equal(t, DefaultFields, p.Fields)
	})
}

func TestProfile_Errors(t *testing.T) {
	f := parseTestConfig(t, testConfig)

	tests := []struct {
		profile string
		code    string
	}{
		{"missing", ErrCodeUnknownProfile},
		{"general", ErrCodeUnknownProfile},
		{"", ErrCodeUnknownProfile},
		{"notype", ErrCodeMissingType},
		{"nowidth", ErrCodeInvalidDimension},
		{"badheight", ErrCodeInvalidDimension},
		{"tiny", ErrCodeInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			p, err := f.Profile(tt.profile)

			assert.Nil(t, p)
			requireCode(t, err, tt.code)
		})
	}
}

func TestProfile_MissingTypeMessage(t *testing.T) {
	f := parseTestConfig(t, testConfig)

	_, err := f.Profile("notype")

	assert.EqualError(t, err, `profile "notype" missing required 'type' key`)
}

func TestProfile_GeneralOverlay(t *testing.T) {
	f := parseTestConfig(t, `
[general]
columns = 4
fields = title
swap-columns = yes

[sheet]
type = a
pagesize = A4
fields = artist

[other]
type = b
pagesize = A4
swap-columns = no
`)

	p, err := f.Profile("sheet")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Columns)
	assert.Equal(t, []string{"artist"}, p.Fields)
	assert.True(t, p.SwapColumns)

	p, err = f.Profile("other")
	require.NoError(t, err)
	assert.Equal(t, []string{"title"}, p.Fields)
	assert.False(t, p.SwapColumns)
}

func TestProfile_KeysAreCaseInsensitive(t *testing.T) {
	f := parseTestConfig(t, "[Sheet]\nTYPE = x\nPageSize = A4\nColumns = 2\n")

	p, err := f.Profile("Sheet")

	require.NoError(t, err)
	assert.Equal(t, 2, p.Columns)
	assert.Equal(t, A4, p.PageSize)
}

func TestProfile_FieldsAreCopied(t *testing.T) {
	f := parseTestConfig(t, testConfig)

	p, err := f.Profile("avery")
	require.NoError(t, err)
	p.Fields[0] = "changed"

	assert.Equal(t, []string{"artist", "title"}, DefaultFields)
}

func TestProfileNames(t *testing.T) {
	f := parseTestConfig(t, "[general]\nswap-columns = yes\n[b]\ntype = x\n[a]\ntype = y\n")

	assert.Equal(t, []string{"b", "a"}, f.ProfileNames())
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.cfg"))
		requireCode(t, err, ErrCodeFileNotFound)
	})

	t.Run("directory is unreadable", func(t *testing.T) {
		_, err := Load(t.TempDir())
		requireCode(t, err, ErrCodeFileUnreadable)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.cfg")
		require.NoError(t, os.WriteFile(path, []byte("[unclosed\ntype = x\n"), 0644))

		_, err := Load(path)
		requireCode(t, err, ErrCodeFileUnreadable)
	})

	t.Run("LoadProfile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "labels.cfg")
		require.NoError(t, os.WriteFile(path, []byte(testConfig), 0644))

		p, err := LoadProfile(path, "custom")
		require.NoError(t, err)
		assert.Equal(t, "custom", p.Name)

		_, err = LoadProfile(path, "nope")
		requireCode(t, err, ErrCodeUnknownProfile)
	})
}
