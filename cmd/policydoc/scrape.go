package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/policydoc"
)

// Run executes the scrape command. Expected failures are reported on
// stdout and end the run early without an error.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if c.Preview {
		return c.runPreview(deps)
	}
	return c.runScrape(deps)
}

func (c *ScrapeCmd) runPreview(deps *Dependencies) error {
	policies, ok := c.extract(deps)
	if !ok {
		return nil
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "UIN\tPOLICY TYPE\tPOLICY NAME\tURL")
	for _, p := range policies {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.UIN, p.Type, p.Name, p.SourceURL)
	}
	return tw.Flush()
}

func (c *ScrapeCmd) runScrape(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Starting policy document scraper...")

	dir := deps.Config.DownloadDir
	created, err := deps.Store.Ensure()
	switch {
	case err != nil:
		fmt.Fprintf(deps.Stdout, "Error creating directory %s: %v\n", dir, err)
	case created:
		fmt.Fprintf(deps.Stdout, "Created directory: %s\n", dir)
	default:
		fmt.Fprintf(deps.Stdout, "Directory already exists: %s\n", dir)
	}

	policies, ok := c.extract(deps)
	if !ok {
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d policies. Processing...\n", len(policies))

	for _, p := range policies {
		filename := policydoc.SafeFilename(p.Name, policydoc.MaxFilenameLength) + ".pdf"

		fmt.Fprintf(deps.Stdout, "Downloading %s...\n", filename)
		if _, err := deps.Downloader.Download(deps.Ctx, p.SourceURL, filename); err != nil {
			fmt.Fprintf(deps.Stdout, "Failed to download %s: %v\n", p.SourceURL, err)
			continue
		}
		fmt.Fprintf(deps.Stdout, "Downloaded: %s\n", filename)
	}

	if err := deps.Writer.WritePolicies(deps.Ctx, policies); err != nil {
		fmt.Fprintf(deps.Stdout, "Error saving CSV: %v\n", err)
	} else {
		fmt.Fprintf(deps.Stdout, "Data saved to %s\n", deps.Config.DataFile)
	}

	fmt.Fprintln(deps.Stdout, "Scraping completed successfully.")
	return nil
}

// extract fetches the listing page and extracts its policies. It reports
// why nothing can be processed and returns false in that case.
func (c *ScrapeCmd) extract(deps *Dependencies) ([]*policydoc.Policy, bool) {
	html, err := deps.Fetcher.Fetch(deps.Ctx, deps.Config.ListingURL)
	if err != nil {
		fmt.Fprintf(deps.Stdout, "Error fetching page: %v\n", err)
		fmt.Fprintln(deps.Stdout, "Failed to retrieve policy documents page. Exiting.")
		return nil, false
	}

	fmt.Fprintln(deps.Stdout, "Page retrieved. Extracting data...")

	policies, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stdout, "Error parsing page: %s\n", policydoc.ErrorMessage(err))
		fmt.Fprintln(deps.Stdout, "Failed to retrieve policy documents page. Exiting.")
		return nil, false
	}

	if len(policies) == 0 {
		fmt.Fprintln(deps.Stdout, "No policies found.")
		return nil, false
	}

	return policies, true
}
