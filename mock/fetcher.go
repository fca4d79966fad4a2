package mock

import (
	"context"

	"github.com/fwojciec/policydoc"
)

var _ policydoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of policydoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ policydoc.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of policydoc.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url, filename string) (*policydoc.Download, error)
}

func (d *Downloader) Download(ctx context.Context, url, filename string) (*policydoc.Download, error) {
	return d.DownloadFn(ctx, url, filename)
}
