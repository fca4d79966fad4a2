package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/policydoc"
)

// Ensure LoggingDownloader implements policydoc.Downloader.
var _ policydoc.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with logging.
type LoggingDownloader struct {
	next   policydoc.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next policydoc.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the outcome.
// Failed downloads are logged at warn level.
func (d *LoggingDownloader) Download(ctx context.Context, url, filename string) (dl *policydoc.Download, err error) {
	defer func(begin time.Time) {
		var bytes int64
		var digest string
		if dl != nil {
			bytes, digest = dl.Bytes, dl.Digest
		}
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		d.logger.Log(ctx, level, "download",
			"url", url,
			"file", filename,
			"bytes", bytes,
			"xxh64", digest,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, url, filename)
}
