package http_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/policydoc"
	"github.com/fwojciec/policydoc/fs"
	pdhttp "github.com/fwojciec/policydoc/http"
	"github.com/fwojciec/policydoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloader_Download(t *testing.T) {
	t.Parallel()

	t.Run("streams body into store", func(t *testing.T) {
		t.Parallel()

		body := bytes.Repeat([]byte("%PDF"), 5000) // larger than one chunk
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write(body)
		}))
		defer server.Close()

		dir := t.TempDir()
		d := pdhttp.NewDownloader(fs.NewStore(dir))

		dl, err := d.Download(context.Background(), server.URL+"/docs/a.pdf", "a.pdf")

		require.NoError(t, err)
		assert.Equal(t, "a.pdf", dl.Filename)
		assert.Equal(t, int64(len(body)), dl.Bytes)
		h := xxhash.New()
		_, _ = h.Write(body)
		assert.Equal(t, hex.EncodeToString(h.Sum(nil)), dl.Digest)

		content, err := os.ReadFile(filepath.Join(dir, "a.pdf"))
		require.NoError(t, err)
		assert.Equal(t, body, content)
	})

	t.Run("does not create file on error status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		dir := t.TempDir()
		d := pdhttp.NewDownloader(fs.NewStore(dir))

		dl, err := d.Download(context.Background(), server.URL, "a.pdf")

		require.Error(t, err)
		assert.Nil(t, dl)
		assert.Contains(t, err.Error(), "403")
		_, statErr := os.Stat(filepath.Join(dir, "a.pdf"))
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		d := pdhttp.NewDownloader(fs.NewStore(t.TempDir()))

		_, err := d.Download(context.Background(), "http://non-existent-host.invalid/a.pdf", "a.pdf")

		require.Error(t, err)
	})

	t.Run("reports store errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("%PDF"))
		}))
		defer server.Close()

		store := &mock.FileStore{
			CreateFn: func(filename string) (io.WriteCloser, error) {
				return nil, errors.New("permission denied")
			},
		}
		d := pdhttp.NewDownloader(store)

		_, err := d.Download(context.Background(), server.URL, "a.pdf")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("leaves truncated file when body is cut short", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Promise more bytes than are sent so the client sees an unexpected EOF.
			w.Header().Set("Content-Length", "100")
			_, _ = w.Write([]byte("%PDF-partial"))
		}))
		defer server.Close()

		dir := t.TempDir()
		d := pdhttp.NewDownloader(fs.NewStore(dir))

		dl, err := d.Download(context.Background(), server.URL, "a.pdf")

		require.Error(t, err)
		require.NotNil(t, dl)
		assert.Equal(t, int64(len("%PDF-partial")), dl.Bytes)
		content, readErr := os.ReadFile(filepath.Join(dir, "a.pdf"))
		require.NoError(t, readErr)
		assert.Equal(t, "%PDF-partial", string(content))
	})

	t.Run("uses the supplied client", func(t *testing.T) {
		t.Parallel()

		var requested string
		client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			requested = r.URL.String()
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader("%PDF-canned")),
				Request:    r,
			}, nil
		})}

		dir := t.TempDir()
		d := pdhttp.NewDownloader(fs.NewStore(dir), pdhttp.WithClient(client))

		dl, err := d.Download(context.Background(), "https://www.hdfclife.com/docs/a.pdf", "a.pdf")

		require.NoError(t, err)
		assert.Equal(t, "https://www.hdfclife.com/docs/a.pdf", requested)
		assert.Equal(t, int64(len("%PDF-canned")), dl.Bytes)
		content, err := os.ReadFile(filepath.Join(dir, "a.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "%PDF-canned", string(content))
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Compile-time verification that Downloader implements policydoc.Downloader
var _ policydoc.Downloader = (*pdhttp.Downloader)(nil)
