package main

import (
	"context"
	"io"
	"log/slog"

	screamingtom "github.com/TBB10/ScreamingTom"
	"github.com/TBB10/ScreamingTom/crawler"
	"github.com/TBB10/ScreamingTom/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Reports  screamingtom.ReportService
	Crawler  *crawler.Crawler
	Assessor *crawler.Assessor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Crawl    CrawlCmd    `cmd:"" help:"Crawl a site and report its size"`
	Classify ClassifyCmd `cmd:"" help:"Size a deal's website and update the CRM recommendation"`
	Batch    BatchCmd    `cmd:"" help:"Classify multiple deals"`
	Reports  ReportsCmd  `cmd:"" help:"List stored crawl reports"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL     string `arg:"" help:"Seed URL to crawl"`
	Budget  int    `short:"b" default:"200" help:"Maximum combined page and file count"`
	Sitemap bool   `help:"Pre-seed the frontier from the site's sitemap"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	DealID string `arg:"" help:"CRM deal ID"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	DealIDs     []string `arg:"" help:"CRM deal IDs"`
	Concurrency int      `short:"c" default:"2" help:"Concurrent assessment limit"`
}

// ReportsCmd is the "reports" subcommand.
type ReportsCmd struct {
	Deal   string `help:"Filter by deal ID"`
	Limit  int    `default:"20" help:"Maximum number of reports"`
	Offset int    `help:"Number of reports to skip"`
}
