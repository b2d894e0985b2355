package fileutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/steamstats/internal/testutil"
)

func TestDownloadHeaderImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("fake-jpeg-bytes"))
	}))
	defer srv.Close()

	env := testutil.NewTestEnv(t)

	result, err := DownloadHeaderImage(HeaderDownloadOptions{
		URL:       srv.URL + "/header.jpg",
		OutputDir: env.RootDir(),
		Filename:  "Portal - header.jpg",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Downloaded)
	assert.Equal(t, "attachments/Portal - header.jpg", result.RelativePath)
	assert.Equal(t, "fake-jpeg-bytes", env.ReadFileString("attachments/Portal - header.jpg"))
}

func TestDownloadHeaderImageSkipsExisting(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte("new-bytes"))
	}))
	defer srv.Close()

	env := testutil.NewTestEnv(t)
	env.WriteFileString("attachments/Portal - header.jpg", "old-bytes")

	result, err := DownloadHeaderImage(HeaderDownloadOptions{
		URL:       srv.URL + "/header.jpg",
		OutputDir: env.RootDir(),
		Filename:  "Portal - header.jpg",
	})
	require.NoError(t, err)

	assert.False(t, result.Downloaded)
	assert.Equal(t, 0, requests)
	assert.Equal(t, "old-bytes", env.ReadFileString("attachments/Portal - header.jpg"))
}

func TestDownloadHeaderImageEmptyURL(t *testing.T) {
	result, err := DownloadHeaderImage(HeaderDownloadOptions{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDownloadHeaderImageBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	env := testutil.NewTestEnv(t)

	_, err := DownloadHeaderImage(HeaderDownloadOptions{
		URL:       srv.URL + "/missing.jpg",
		OutputDir: env.RootDir(),
		Filename:  "x.jpg",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestBuildHeaderFilename(t *testing.T) {
	assert.Equal(t, "Half-Life - Alyx - header.jpg", BuildHeaderFilename("Half-Life: Alyx"))
}
