package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Store: StoreConfig{
			Backend:  BackendFile,
			DataPath: "/some/path",
		},
		Catalog: CatalogConfig{PageSize: 20},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"DEBUG", true},  // case insensitive
		{"trace", false}, // not supported
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_StoreBackend(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Backend = BackendBadger
	assert.NoError(t, cfg.Validate())

	cfg.Store.Backend = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg.Store.Backend = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyDataPath(t *testing.T) {
	cfg := validConfig()
	cfg.Store.DataPath = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_PageSize(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.PageSize = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyAPIKeyAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.APIKey = ""
	assert.NoError(t, cfg.Validate(), "missing key is a per-request configuration error, not a startup error")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := expandPath("~/games/data", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "games", "data"), expanded)

	expanded, err = expandPath("", "/default/path")
	require.NoError(t, err)
	assert.Equal(t, "/default/path", expanded)

	expanded, err = expandPath("/abs/path/../path", "")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", expanded)
}

func TestExpandDataPath_Default(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := validConfig()
	cfg.Store.DataPath = ""
	require.NoError(t, cfg.expandDataPath())
	assert.Equal(t, filepath.Join(home, "PlayTrack", "data"), cfg.Store.DataPath)
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("PLAYTRACK_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "PLAYTRACK_TEST_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "PLAYTRACK_TEST_KEY", "default"))
	assert.Equal(t, "default", getConfigValue("", "PLAYTRACK_TEST_MISSING", "default"))
}

func TestGetIntConfigValue(t *testing.T) {
	t.Setenv("PLAYTRACK_TEST_INT", "40")
	assert.Equal(t, 40, getIntConfigValue("", "PLAYTRACK_TEST_INT", 20))

	t.Setenv("PLAYTRACK_TEST_INT", "not-a-number")
	assert.Equal(t, 20, getIntConfigValue("", "PLAYTRACK_TEST_INT", 20))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "# comment\nPLAYTRACK_ENVFILE_KEY=abc123\nPLAYTRACK_ENVFILE_QUOTED=\"quoted\"\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o600))

	t.Setenv("PLAYTRACK_ENVFILE_KEY", "")
	t.Setenv("PLAYTRACK_ENVFILE_QUOTED", "")
	os.Unsetenv("PLAYTRACK_ENVFILE_KEY")
	os.Unsetenv("PLAYTRACK_ENVFILE_QUOTED")

	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "abc123", os.Getenv("PLAYTRACK_ENVFILE_KEY"))
	assert.Equal(t, "quoted", os.Getenv("PLAYTRACK_ENVFILE_QUOTED"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	err := loadEnvFile(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestLoadEnvFile_BadFormat(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("NOT A PAIR\n"), 0o600))

	assert.Error(t, loadEnvFile(envPath))
}
