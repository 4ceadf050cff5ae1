package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

//
// -----------------------------------------------------------------------------
// LoadFromEnv (not parallel: uses t.Setenv)
// -----------------------------------------------------------------------------

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("CITYPOP_LOG_MODE", "")
	t.Setenv("CITYPOP_FINDER", "")
	t.Setenv("CITYPOP_DATA_FILE", "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("CITYPOP_LOG_MODE", "prod")
	t.Setenv("CITYPOP_FINDER", " configurable ")
	t.Setenv("CITYPOP_DATA_FILE", "/data/cities.txt")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{LogMode: "prod", Finder: FinderConfigurable, DataFile: "/data/cities.txt"}, cfg)
}

func TestLoadFromEnv_InvalidFinder(t *testing.T) {
	t.Setenv("CITYPOP_FINDER", "global")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `got "global"`)
}

//
// -----------------------------------------------------------------------------
// LoadFile
// -----------------------------------------------------------------------------

func TestLoadFile_OverlaysBase(t *testing.T) {
	t.Parallel()

	p := writeTempFile(t, t.TempDir(), "citypop.yaml", "finder: configurable\ndata_file: cities.txt\n")

	cfg, err := LoadFile(p, Default())
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.LogMode, "unset keys keep base value")
	assert.Equal(t, FinderConfigurable, cfg.Finder)
	assert.Equal(t, "cities.txt", cfg.DataFile)
}

func TestLoadFile_EmptyDocument(t *testing.T) {
	t.Parallel()

	p := writeTempFile(t, t.TempDir(), "empty.yaml", "")

	cfg, err := LoadFile(p, Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cases := []struct {
		name    string
		path    string
		wantSub string
	}{
		{
			name:    "missing file",
			path:    filepath.Join(dir, "nope.yaml"),
			wantSub: "config: open",
		},
		{
			name:    "unknown key",
			path:    writeTempFile(t, dir, "unknown.yaml", "findr: singleton\n"),
			wantSub: "config: decode",
		},
		{
			name:    "malformed yaml",
			path:    writeTempFile(t, dir, "bad.yaml", "finder: [\n"),
			wantSub: "config: decode",
		},
		{
			name:    "invalid finder",
			path:    writeTempFile(t, dir, "finder.yaml", "finder: global\n"),
			wantSub: "config: finder must be",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadFile(tc.path, Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Config{Finder: FinderSingleton}.Validate())
	assert.NoError(t, Config{Finder: FinderConfigurable}.Validate())
	assert.Error(t, Config{}.Validate())
}
