package testutil

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/lepinkainen/steamstats/internal/config"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	SteamAPIKey    string
	SteamID        string
	OverwriteFiles bool
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		SteamAPIKey:    config.SteamAPIKey,
		SteamID:        config.SteamID,
		OverwriteFiles: config.OverwriteFiles,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.SteamAPIKey = state.SteamAPIKey
	config.SteamID = state.SteamID
	config.OverwriteFiles = state.OverwriteFiles
}

// ResetConfig saves the current config state, resets viper, and schedules
// restoration when the test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfig sets up a test configuration with common defaults and
// restores the previous state when the test completes.
func SetTestConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	config.SteamAPIKey = "test-api-key"
	config.SteamID = "76561197960287930"
	config.OverwriteFiles = true

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset, so a previously-unset key stays set.
	})
}

// SetupExportDir points the export output directory at the test environment
// with automatic cleanup.
func SetupExportDir(t *testing.T, env *TestEnv) {
	t.Helper()
	SetViperValue(t, "ExportOutputDir", env.RootDir())
}
