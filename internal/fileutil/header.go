package fileutil

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// HeaderDownloadOptions holds options for downloading game header art.
type HeaderDownloadOptions struct {
	// URL is the source URL of the header image
	URL string
	// OutputDir is the directory the markdown notes live in
	OutputDir string
	// Filename is the name of the image file (e.g. "Title - header.jpg")
	Filename string
	// Refresh forces re-downloading even if the image exists
	Refresh bool
	// Client overrides the HTTP client, mainly for tests
	Client *http.Client
}

// HeaderDownloadResult holds the result of a header art download.
type HeaderDownloadResult struct {
	// Downloaded indicates if a new file was fetched
	Downloaded bool
	// LocalPath is the full path to the image on disk
	LocalPath string
	// RelativePath is the path relative to the note (e.g. "attachments/Title - header.jpg")
	RelativePath string
}

// DownloadHeaderImage downloads a game's header art into the attachments
// directory next to the notes. An existing file is kept unless Refresh is set.
func DownloadHeaderImage(opts HeaderDownloadOptions) (*HeaderDownloadResult, error) {
	if opts.URL == "" {
		return nil, nil
	}

	attachmentsDir := filepath.Join(opts.OutputDir, "attachments")
	if err := os.MkdirAll(attachmentsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create attachments directory: %w", err)
	}

	result := &HeaderDownloadResult{
		LocalPath:    filepath.Join(attachmentsDir, opts.Filename),
		RelativePath: filepath.Join("attachments", opts.Filename),
	}

	if FileExists(result.LocalPath) && !opts.Refresh {
		slog.Debug("Header art already exists, skipping download", "path", result.LocalPath)
		return result, nil
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Get(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download header art: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d downloading header art from %s", resp.StatusCode, opts.URL)
	}

	file, err := os.Create(result.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create header art file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to write header art file: %w", err)
	}

	slog.Info("Downloaded header art", "path", result.LocalPath)
	result.Downloaded = true
	return result, nil
}

// BuildHeaderFilename creates a standard header art filename from a title.
func BuildHeaderFilename(title string) string {
	return SanitizeFilename(title) + " - header.jpg"
}
