package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/places/pkg/places"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, places.DefaultBaseURL, config.PlacesAPI.BaseURL)
	assert.Equal(t, places.DefaultTimeout, config.PlacesAPI.Timeout())
	assert.False(t, config.PlacesAPI.HasCredentials())
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, []string{"stdout"}, config.Logging.Output)
}

func TestLoadFromFiles_LaterFilesOverride(t *testing.T) {
	base := writeConfig(t, "base.toml", `
[places_api]
api_key = "base-key"
language = "en"
request_timeout = "10s"

[logging]
level = "debug"
`)
	local := writeConfig(t, "local.toml", `
[places_api]
language = "da"
`)

	config, err := LoadFromFiles(base, "", local)
	require.NoError(t, err)

	assert.Equal(t, "base-key", config.PlacesAPI.APIKey)
	assert.Equal(t, "da", config.PlacesAPI.Language)
	assert.Equal(t, 10*time.Second, config.PlacesAPI.Timeout())
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, places.DefaultBaseURL, config.PlacesAPI.BaseURL)
}

func TestLoadFromFiles_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[places_api]
api_key = "file-key"
`)
	t.Setenv("PLACES_API_KEY", "env-key")
	t.Setenv("PLACES_BASE_URL", "http://localhost:9999/place")
	t.Setenv("PLACES_REQUEST_TIMEOUT", "2s")
	t.Setenv("PLACES_LOG_OUTPUT", "stdout, file,")

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", config.PlacesAPI.APIKey)
	assert.Equal(t, "http://localhost:9999/place", config.PlacesAPI.BaseURL)
	assert.Equal(t, 2*time.Second, config.PlacesAPI.Timeout())
	assert.Equal(t, []string{"stdout", "file"}, config.Logging.Output)
}

func TestLoadFromFiles_Errors(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	broken := writeConfig(t, "broken.toml", "[places_api\napi_key = ")
	_, err = LoadFromFiles(broken)
	assert.Error(t, err)

	badTimeout := writeConfig(t, "timeout.toml", `
[places_api]
request_timeout = "soon"
`)
	_, err = LoadFromFiles(badTimeout)
	assert.Error(t, err)
}

func TestPlacesAPIConfig_ClientOptions(t *testing.T) {
	cfg := PlacesAPIConfig{
		APIKey:   "key",
		BaseURL:  "http://localhost:8080/place",
		Language: "fr",
	}

	client := places.NewClient(cfg.ClientOptions(arbor.NewLogger())...)
	assert.Equal(t, "http://localhost:8080/place/", client.BaseURL())

	assert.Empty(t, (&PlacesAPIConfig{}).ClientOptions(nil))
}
