package fileutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/steamstats/internal/testutil"
)

func TestSanitizeFilename(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain name", input: "Portal", expected: "Portal"},
		{name: "colon", input: "Half-Life: Alyx", expected: "Half-Life - Alyx"},
		{name: "forward slash", input: "Day of Defeat/Source", expected: "Day of Defeat-Source"},
		{name: "backslash", input: "Weird\\Name", expected: "Weird-Name"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeFilename(tc.input))
		})
	}
}

func TestGetNoteFilePath(t *testing.T) {
	path := GetNoteFilePath("Half-Life: Alyx", "/notes")
	assert.Equal(t, "/notes/Half-Life - Alyx.md", path)
}

func TestFileExists(t *testing.T) {
	env := testutil.NewTestEnv(t)

	assert.False(t, FileExists(env.Path("missing.txt")))

	env.WriteFileString("present.txt", "x")
	assert.True(t, FileExists(env.Path("present.txt")))

	env.MkdirAll("somedir")
	assert.False(t, FileExists(env.Path("somedir")))
}

func TestWriteFileWithOverwrite(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.Path("nested", "file.txt")

	written, err := WriteFileWithOverwrite(path, []byte("first"), 0644, false)
	require.NoError(t, err)
	assert.True(t, written)

	// Existing file is skipped without the overwrite flag.
	written, err = WriteFileWithOverwrite(path, []byte("second"), 0644, false)
	require.NoError(t, err)
	assert.False(t, written)
	assert.Equal(t, "first", env.ReadFileString("nested/file.txt"))

	written, err = WriteFileWithOverwrite(path, []byte("second"), 0644, true)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, "second", env.ReadFileString("nested/file.txt"))
}

func TestWriteJSONFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := env.Path("out", "data.json")

	data := map[string]any{"name": "Portal", "appid": 400}

	written, err := WriteJSONFile(data, path, false)
	require.NoError(t, err)
	assert.True(t, written)
	env.AssertFileContains("out/data.json", `"name": "Portal"`)

	written, err = WriteJSONFile(map[string]any{"name": "other"}, path, false)
	require.NoError(t, err)
	assert.False(t, written)
	env.AssertFileContains("out/data.json", `"name": "Portal"`)
}
