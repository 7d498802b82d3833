package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarndev/propstxt/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, ".png", cfg.Export.TextureExt)
	assert.Equal(t, "generic", cfg.Export.Profile)
	assert.True(t, cfg.Output.Color)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	configContent := `
export:
  root: "/data/export"
  texture_ext: ".dds"
  profile: "hogwarts-legacy"

scan:
  workers: 8

output:
  format: json
  color: false

validate:
  exclude_paths:
    - "/Game/Effects/*"
  disable_blend_mode_check: true
`

	tmpDir := t.TempDir()

	tmpFile, err := os.CreateTemp(tmpDir, "test-config-*.yaml")
	require.NoError(t, err)

	_, writeErr := tmpFile.WriteString(configContent)
	require.NoError(t, writeErr)

	tmpFile.Close()

	cfg, loadErr := config.LoadConfig(tmpFile.Name())
	require.NoError(t, loadErr)

	assert.Equal(t, "/data/export", cfg.Export.Root)
	assert.Equal(t, ".dds", cfg.Export.TextureExt)
	assert.Equal(t, "hogwarts-legacy", cfg.Export.Profile)
	assert.Equal(t, 8, cfg.Scan.Workers)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, []string{"/Game/Effects/*"}, cfg.Validate.ExcludePaths)
	assert.True(t, cfg.Validate.DisableBlendModeCheck)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PROPSTXT_SCAN_WORKERS", "2")
	t.Setenv("PROPSTXT_EXPORT_ROOT", "/env/export")
	t.Setenv("PROPSTXT_OUTPUT_FORMAT", "none")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Scan.Workers)
	assert.Equal(t, "/env/export", cfg.Export.Root)
	assert.Equal(t, "none", cfg.Output.Format)
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "bad workers",
			env:     map[string]string{"PROPSTXT_SCAN_WORKERS": "0"},
			wantErr: config.ErrInvalidWorkers,
		},
		{
			name:    "bad format",
			env:     map[string]string{"PROPSTXT_OUTPUT_FORMAT": "xml"},
			wantErr: config.ErrInvalidFormat,
		},
		{
			name:    "bad texture ext",
			env:     map[string]string{"PROPSTXT_EXPORT_TEXTURE_EXT": "png"},
			wantErr: config.ErrInvalidTextureExt,
		},
		{
			name:    "bad profile",
			env:     map[string]string{"PROPSTXT_EXPORT_PROFILE": "no-such-game"},
			wantErr: config.ErrUnknownProfile,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.LoadConfig("")
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig("/no/such/config.yaml")
	require.Error(t, err)
}
