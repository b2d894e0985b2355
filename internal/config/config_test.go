package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfigReadsViperValues(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("steam.apikey", "test-key")
	viper.Set("steam.steamid", "gaben")
	viper.Set("OverwriteFiles", true)

	InitConfig()

	assert.Equal(t, "test-key", SteamAPIKey)
	assert.Equal(t, "gaben", SteamID)
	assert.True(t, OverwriteFiles)
	assert.Equal(t, "./exports/", viper.GetString("ExportOutputDir"))
}

func TestSetOverwriteFiles(t *testing.T) {
	// Save the original value to restore after the test
	originalValue := OverwriteFiles

	testCases := []struct {
		name     string
		input    bool
		expected bool
	}{
		{
			name:     "set to true",
			input:    true,
			expected: true,
		},
		{
			name:     "set to false",
			input:    false,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Set the value
			SetOverwriteFiles(tc.input)

			// Check that the global variable was updated
			assert.Equal(t, tc.expected, OverwriteFiles)
		})
	}

	// Restore the original value
	OverwriteFiles = originalValue
}
