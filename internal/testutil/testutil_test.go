package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/lepinkainen/steamstats/internal/config"
)

func TestTestEnvPath(t *testing.T) {
	env := NewTestEnv(t)

	path := env.Path("subdir", "file.txt")
	assert.True(t, filepath.IsAbs(path))
	assert.Contains(t, path, "subdir")
	assert.Contains(t, path, "file.txt")
}

func TestTestEnvWriteReadFile(t *testing.T) {
	env := NewTestEnv(t)

	env.WriteFileString("nested/test.txt", "test content")

	env.RequireFileExists("nested/test.txt")
	assert.Equal(t, "test content", env.ReadFileString("nested/test.txt"))
	env.AssertFileContains("nested/test.txt", "content")
}

func TestTestEnvFileExists(t *testing.T) {
	env := NewTestEnv(t)

	assert.False(t, env.FileExists("missing.txt"))
	env.WriteFileString("present.txt", "x")
	assert.True(t, env.FileExists("present.txt"))
}

func TestTestEnvListFiles(t *testing.T) {
	env := NewTestEnv(t)

	env.WriteFileString("dir/a.csv", "a")
	env.WriteFileString("dir/b.csv", "b")

	files := env.ListFiles("dir")
	assert.ElementsMatch(t, []string{"a.csv", "b.csv"}, files)
}

func TestSetTestConfig(t *testing.T) {
	SetTestConfig(t)

	assert.Equal(t, "test-api-key", config.SteamAPIKey)
	assert.Equal(t, "76561197960287930", config.SteamID)
	assert.True(t, config.OverwriteFiles)
}

func TestSetViperValue(t *testing.T) {
	ResetConfig(t)

	SetViperValue(t, "steam.apikey", "override")
	assert.Equal(t, "override", viper.GetString("steam.apikey"))
}
