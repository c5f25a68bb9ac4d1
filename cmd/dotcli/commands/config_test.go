package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dotcli/internal/config"
)

func TestConfigList(t *testing.T) {
	setupHome(t)
	t.Setenv("DOTCLI_BACKUP_RETENTION", "9")

	out, err := execute(t, "config", "list")
	require.NoError(t, err)
	var fromYAML config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, 9, fromYAML.Backup.Retention)
	assert.False(t, fromYAML.AutoSource)

	out, err = execute(t, "config", "list", "--format", "toml")
	require.NoError(t, err)
	var fromTOML config.Config
	require.NoError(t, toml.Unmarshal([]byte(out), &fromTOML))
	assert.Equal(t, fromYAML, fromTOML)
}

func TestConfigList_BadFormat(t *testing.T) {
	setupHome(t)

	_, err := execute(t, "config", "list", "--format", "ini")
	assert.ErrorContains(t, err, `unsupported format "ini"`)
}

func TestConfigGet(t *testing.T) {
	setupHome(t)

	tests := []struct {
		key  string
		want string
	}{
		{"backup.retention", "5\n"},
		{"auto_source", "false\n"},
		{"candidates", "~/.zprofile\n~/.zshrc\n~/.bashrc\n~/.bash_profile\n"},
		{"no_such_key", "not set\n"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			out, err := execute(t, "config", "get", tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConfigEdit_CreatesFile(t *testing.T) {
	home := setupHome(t)

	var opened string
	orig := openEditor
	openEditor = func(_ context.Context, path string) error {
		opened = path
		return nil
	}
	t.Cleanup(func() { openEditor = orig })

	_, err := execute(t, "config", "edit")
	require.NoError(t, err)

	want := filepath.Join(home, ".config", "dotcli", "config.yaml")
	assert.Equal(t, want, opened)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, 1, cfg.Version)
}
