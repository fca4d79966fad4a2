package policydoc

import (
	"context"
	"io"
)

// Fetcher retrieves the HTML of a listing page.
type Fetcher interface {
	// Fetch performs a single request for the URL and returns the body.
	// Non-success responses are reported as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Download describes a file written by a Downloader.
type Download struct {
	Filename string
	Bytes    int64

	// Digest is the hex xxh64 of the bytes written. It is informational
	// only; downloads are never verified against it.
	Digest string
}

// Downloader streams remote documents into local storage.
type Downloader interface {
	// Download requests url and writes the response body to filename as it
	// is received. On failure the returned Download, if non-nil, describes
	// the partial file that was left behind.
	Download(ctx context.Context, url, filename string) (*Download, error)
}

// FileStore creates files for downloaded documents.
type FileStore interface {
	// Ensure creates the underlying directory if needed and reports
	// whether it had to be created.
	Ensure() (created bool, err error)

	// Create opens filename for writing, truncating any existing file.
	Create(filename string) (io.WriteCloser, error)
}
