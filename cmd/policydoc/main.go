package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/policydoc"
	"github.com/fwojciec/policydoc/csv"
	"github.com/fwojciec/policydoc/fs"
	"github.com/fwojciec/policydoc/goquery"
	pdhttp "github.com/fwojciec/policydoc/http"
	"github.com/fwojciec/policydoc/rod"
	pdslog "github.com/fwojciec/policydoc/slog"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. With no arguments it
// scrapes the default listing.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("policydoc"),
		kong.Description("Download policy documents and record their metadata"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"base_url":      policydoc.DefaultBaseURL,
			"listing_url":   policydoc.DefaultListingURL,
			"download_dir":  policydoc.DefaultDownloadDir,
			"data_file":     policydoc.DefaultDataFile,
			"max_policies":  fmt.Sprint(policydoc.DefaultMaxPolicies),
			"link_selector": policydoc.DefaultLinkSelector,
			"title_class":   policydoc.DefaultTitleClass,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg := cli.Config()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %s", policydoc.ErrorMessage(err))
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Config:    cfg,
		Extractor: goquery.NewExtractor(cfg),
		Writer:    csv.NewWriter(cfg.DataFile),
	}

	store := fs.NewStore(cfg.DownloadDir)
	deps.Store = store

	httpOpts := []pdhttp.Option{
		pdhttp.WithTimeout(cli.Timeout),
		pdhttp.WithUserAgent(cli.UserAgent),
	}

	if cli.Render {
		timeout := cli.Timeout
		if timeout == 0 {
			timeout = rod.DefaultFetchTimeout
		}
		rodFetcher, err := rod.NewFetcher(
			rod.WithFetchTimeout(timeout),
			rod.WithWaitSelector(cfg.LinkSelector),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		deps.Fetcher = rodFetcher
	} else {
		deps.Fetcher = pdhttp.NewFetcher(httpOpts...)
	}
	defer deps.Fetcher.Close()

	deps.Downloader = pdhttp.NewDownloader(store, httpOpts...)

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil)).With("run", uuid.NewString())
		deps.Fetcher = pdslog.NewLoggingFetcher(deps.Fetcher, logger)
		deps.Downloader = pdslog.NewLoggingDownloader(deps.Downloader, logger)
	}

	cmd := &ScrapeCmd{Preview: cli.Preview}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL      string        `name:"base-url" default:"${base_url}" help:"Origin that relative document links resolve against"`
	ListingURL   string        `name:"listing-url" default:"${listing_url}" help:"Page listing the policy documents"`
	DownloadDir  string        `name:"download-dir" short:"d" default:"${download_dir}" help:"Directory receiving downloaded PDFs"`
	DataFile     string        `name:"data-file" short:"o" default:"${data_file}" help:"CSV file receiving policy metadata"`
	Max          int           `short:"n" default:"${max_policies}" help:"Maximum number of policies to process"`
	LinkSelector string        `name:"link-selector" default:"${link_selector}" help:"CSS selector matching document links"`
	TitleClass   string        `name:"title-class" default:"${title_class}" help:"Class marking section title containers"`
	Timeout      time.Duration `short:"t" default:"0s" help:"Per-request timeout (0 disables)"`
	UserAgent    string        `name:"user-agent" help:"User-Agent header for requests"`
	Render       bool          `short:"r" help:"Render the listing in headless Chrome"`
	Preview      bool          `short:"p" help:"List policies without downloading or saving"`
	Verbose      bool          `short:"v" help:"Log requests to stderr"`
}

// Config returns the run configuration described by the flags.
func (c *CLI) Config() policydoc.Config {
	return policydoc.Config{
		BaseURL:      c.BaseURL,
		ListingURL:   c.ListingURL,
		DownloadDir:  c.DownloadDir,
		DataFile:     c.DataFile,
		MaxPolicies:  c.Max,
		LinkSelector: c.LinkSelector,
		TitleClass:   c.TitleClass,
	}
}
