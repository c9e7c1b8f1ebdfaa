package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinsuchenak/hcloud-inventory/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[hcloud]
token = secret-token

[filters]
env = prod
Managed: ansible

[groups:web]
role = web

[groups:db]
role = db
tier = primary
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "secret-token", cfg.Token)
	assert.Empty(t, cfg.Endpoint)
	assert.Equal(t, model.SelectorSet{
		{Key: "env", Value: "prod"},
		{Key: "managed", Value: "ansible"},
	}, cfg.Filters)

	require.Len(t, cfg.Groups, 2)
	assert.Equal(t, "web", cfg.Groups[0].Name)
	assert.Equal(t, model.SelectorSet{{Key: "role", Value: "web"}}, cfg.Groups[0].Selectors)
	assert.Equal(t, "db", cfg.Groups[1].Name)
	assert.Equal(t, model.SelectorSet{
		{Key: "role", Value: "db"},
		{Key: "tier", Value: "primary"},
	}, cfg.Groups[1].Selectors)
}

func TestLoadOptionalSections(t *testing.T) {
	cfg, err := LoadBytes("mem", []byte("[hcloud]\ntoken = abc\nendpoint = http://localhost:4000/v1\n"))
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.Token)
	assert.Equal(t, "http://localhost:4000/v1", cfg.Endpoint)
	assert.NotNil(t, cfg.Filters)
	assert.Empty(t, cfg.Filters)
	assert.NotNil(t, cfg.Groups)
	assert.Empty(t, cfg.Groups)
}

func TestLoadDefaultSectionIsInherited(t *testing.T) {
	cfg, err := LoadBytes("mem", []byte(`
[DEFAULT]
managed = ansible

[hcloud]
token = abc

[filters]
env = prod

[groups:web]
role = web
managed = manual
`))
	require.NoError(t, err)

	assert.Equal(t, model.SelectorSet{
		{Key: "managed", Value: "ansible"},
		{Key: "env", Value: "prod"},
	}, cfg.Filters)
	assert.Equal(t, model.SelectorSet{
		{Key: "managed", Value: "manual"},
		{Key: "role", Value: "web"},
	}, cfg.Groups[0].Selectors)
}

func TestLoadInlineHashIsPartOfValue(t *testing.T) {
	cfg, err := LoadBytes("mem", []byte("[hcloud]\ntoken = abc#123\n"))
	require.NoError(t, err)
	assert.Equal(t, "abc#123", cfg.Token)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		section string
	}{
		{"missing hcloud section", "[filters]\nenv = prod\n", ErrMissingSection, SectionHCloud},
		{"missing token", "[hcloud]\nendpoint = x\n", ErrMissingKey, SectionHCloud},
		{"reserved group all", "[hcloud]\ntoken = t\n[groups:all]\nrole = web\n", ErrReservedGroup, "groups:all"},
		{"reserved group meta", "[hcloud]\ntoken = t\n[groups:_meta]\nrole = web\n", ErrReservedGroup, "groups:_meta"},
		{"reserved group ungrouped", "[hcloud]\ntoken = t\n[groups:ungrouped]\n", ErrReservedGroup, "groups:ungrouped"},
		{"empty group name", "[hcloud]\ntoken = t\n[groups:]\nrole = web\n", ErrEmptyGroup, "groups:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes("test.ini", []byte(tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var cfgErr *Error
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.section, cfgErr.Section)
			assert.Equal(t, "test.ini", cfgErr.Path)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	require.Error(t, err)

	var cfgErr *Error
	assert.True(t, errors.As(err, &cfgErr))
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, FileName, filepath.Base(DefaultPath()))
}

func TestConfigStringHidesToken(t *testing.T) {
	cfg := &Config{Path: "hcloud.ini", Token: "secret", Filters: model.SelectorSet{{Key: "a", Value: "b"}}}
	assert.NotContains(t, cfg.String(), "secret")
	assert.Contains(t, cfg.String(), "filters: 1")
}
