package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	screamingtom "github.com/TBB10/ScreamingTom"
	"github.com/TBB10/ScreamingTom/crawler"
	stomhttp "github.com/TBB10/ScreamingTom/http"
	"github.com/TBB10/ScreamingTom/hubspot"
	"github.com/TBB10/ScreamingTom/rod"
	stomslog "github.com/TBB10/ScreamingTom/slog"
	"github.com/TBB10/ScreamingTom/sqlite"
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
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ReportService screamingtom.ReportService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("screamingtom"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'screamingtom --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Global flags may precede the command, so dispatch on the parsed
	// selection rather than args[0].
	cmd = kongCtx.Selected().Name

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SCREAMINGTOM_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ReportService = sqlite.NewReportService(m.DB)
	deps.DB = m.DB
	deps.Reports = m.ReportService

	// Commands that crawl need a browser session factory. Sessions are
	// created lazily per run, so a missing browser surfaces as an ESETUP
	// error from the crawl itself.
	if cmd == "crawl" || cmd == "classify" || cmd == "batch" {
		budget := 0
		var sitemaps screamingtom.SitemapService
		if cmd == "crawl" {
			budget = cli.Crawl.Budget
			if cli.Crawl.Sitemap {
				sitemaps = stomslog.NewLoggingSitemapService(stomhttp.NewSitemapService(nil), logger)
			}
		}

		deps.Crawler = &crawler.Crawler{
			NewSession: func(ctx context.Context) (screamingtom.Renderer, error) {
				r, err := rod.NewRenderer()
				if err != nil {
					return nil, err
				}
				return rod.NewLoggingRenderer(r, logger), nil
			},
			Delays:   stomslog.NewLoggingDelayPolicy(stomhttp.NewDelayPolicy(nil), logger),
			Sitemaps: sitemaps,
			Budget:   budget,
			Logger:   logger,
		}
	}

	// Commands that touch the CRM need an API key.
	if cmd == "classify" || cmd == "batch" {
		apiKey := os.Getenv("HUBSPOT_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "HUBSPOT_API_KEY environment variable not set")
			return fmt.Errorf("HUBSPOT_API_KEY not set")
		}

		deps.Assessor = &crawler.Assessor{
			Deals:   stomslog.NewLoggingDealService(hubspot.NewDealService(apiKey), logger),
			Crawler: deps.Crawler,
			Reports: deps.Reports,
			Logger:  logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SCREAMINGTOM_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "screamingtom.db"
	}
	dir := filepath.Join(home, ".screamingtom")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "screamingtom.db")
}
