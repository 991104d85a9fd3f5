package main

import (
	"fmt"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	result, err := deps.Crawler.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", screamingtom.ErrorMessage(err))
		return err
	}

	total := result.Total()
	fmt.Fprintf(deps.Stdout, "Crawled %s\n", c.URL)
	fmt.Fprintf(deps.Stdout, "Pages: %d\n", len(result.Pages))
	fmt.Fprintf(deps.Stdout, "Files: %d\n", len(result.Files))
	fmt.Fprintf(deps.Stdout, "Total: %d\n", total)

	if total < screamingtom.MinConclusiveCount {
		fmt.Fprintln(deps.Stdout, "Result inconclusive: too few pages found, verify the site manually.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Recommended package: %s\n", screamingtom.RecommendPackage(total))
	return nil
}
