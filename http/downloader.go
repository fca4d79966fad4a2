package http

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/policydoc"
)

// ChunkSize is the size of the buffer used to stream response bodies.
const ChunkSize = 8192

// Ensure Downloader implements policydoc.Downloader at compile time.
var _ policydoc.Downloader = (*Downloader)(nil)

// Downloader streams documents into a policydoc.FileStore.
type Downloader struct {
	client    *http.Client
	store     policydoc.FileStore
	userAgent string
}

// NewDownloader creates a Downloader writing into store.
func NewDownloader(store policydoc.FileStore, opts ...Option) *Downloader {
	o := newOptions(opts)
	return &Downloader{
		client:    o.client,
		store:     store,
		userAgent: o.userAgent,
	}
}

// Download requests url and copies the body into filename chunk by chunk.
// The file is only created once the server has answered with a 2xx status.
// If the copy fails, the partial file is left in place and the returned
// Download describes what was written.
func (d *Downloader) Download(ctx context.Context, url, filename string) (_ *policydoc.Download, err error) {
	resp, err := get(ctx, d.client, url, d.userAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	f, err := d.store.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", filename, cerr)
		}
	}()

	h := xxhash.New()
	n, err := io.CopyBuffer(io.MultiWriter(f, h), onlyReader{resp.Body}, make([]byte, ChunkSize))
	dl := &policydoc.Download{
		Filename: filename,
		Bytes:    n,
		Digest:   hex.EncodeToString(h.Sum(nil)),
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return dl, err
		}
		return dl, fmt.Errorf("writing %s: %w", filename, err)
	}
	return dl, nil
}

// onlyReader hides any WriterTo implementation so that io.CopyBuffer
// streams through the fixed-size buffer.
type onlyReader struct {
	io.Reader
}
