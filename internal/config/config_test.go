package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://disqus.com/api", cfg.API.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.API.UserKey)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "disqussion.toml")
	content := `[api]
user_key = "file-key"
base_url = "http://localhost:8080/api"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.API.UserKey)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DISQUS_API_USER_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "disqussion.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nuser_key = \"file-key\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.API.UserKey)
}

func TestDiscoverUserKeyFromLegacyFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".disqus_key"), []byte("legacy-key\n"), 0600))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.API.UserKey)
}

func TestLegacyFilePrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".disqus"), []byte("first"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".disqus_key"), []byte("second"), 0600))

	assert.Equal(t, "first", DiscoverUserKey())
}

func TestValidateRequiresUserKey(t *testing.T) {
	cfg := &Config{}
	cfg.API.BaseURL = "http://disqus.com/api"
	assert.Error(t, Validate(cfg))

	cfg.API.UserKey = "some-key"
	assert.NoError(t, Validate(cfg))
}

func TestInitConfigRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disqussion.toml")

	require.NoError(t, InitConfig(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "your-user-api-key", cfg.API.UserKey)

	assert.Error(t, InitConfig(path), "existing file must not be overwritten")
}
