package main

import (
	"context"
	"io"

	"github.com/fwojciec/policydoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config     policydoc.Config
	Fetcher    policydoc.Fetcher
	Extractor  policydoc.PolicyExtractor
	Store      policydoc.FileStore
	Downloader policydoc.Downloader
	Writer     policydoc.PolicyWriter
}

// ScrapeCmd fetches the listing, downloads each policy document and writes
// the metadata table.
type ScrapeCmd struct {
	Preview bool
}
