package sqlite_test

import (
	"context"
	"testing"
	"time"

	screamingtom "github.com/TBB10/ScreamingTom"
	"github.com/TBB10/ScreamingTom/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestReport(dealID string) *screamingtom.CrawlReport {
	return &screamingtom.CrawlReport{
		DealID:    dealID,
		SeedURL:   "https://example.com",
		PageCount: 42,
		FileCount: 7,
		Package:   screamingtom.PackageCore,
	}
}

func TestReportService_CreateReport(t *testing.T) {
	t.Parallel()

	t.Run("creates report with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewReportService(db)
		ctx := context.Background()

		report := newTestReport("deal-1")
		err := svc.CreateReport(ctx, report)
		require.NoError(t, err)

		assert.NotEmpty(t, report.ID, "ID should be generated")
		assert.False(t, report.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns error for invalid report", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewReportService(db)
		ctx := context.Background()

		report := &screamingtom.CrawlReport{} // missing seed URL

		err := svc.CreateReport(ctx, report)
		require.Error(t, err)
		assert.Equal(t, screamingtom.EINVALID, screamingtom.ErrorCode(err))
	})
}

func TestReportService_FindReportByID(t *testing.T) {
	t.Parallel()

	t.Run("returns report when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewReportService(db)
		ctx := context.Background()

		report := newTestReport("deal-1")
		require.NoError(t, svc.CreateReport(ctx, report))

		found, err := svc.FindReportByID(ctx, report.ID)
		require.NoError(t, err)
		assert.Equal(t, report.ID, found.ID)
		assert.Equal(t, report.DealID, found.DealID)
		assert.Equal(t, report.SeedURL, found.SeedURL)
		assert.Equal(t, report.PageCount, found.PageCount)
		assert.Equal(t, report.FileCount, found.FileCount)
		assert.Equal(t, report.Package, found.Package)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewReportService(db)
		ctx := context.Background()

		_, err := svc.FindReportByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, screamingtom.ENOTFOUND, screamingtom.ErrorCode(err))
	})
}

func TestReportService_FindReports(t *testing.T) {
	t.Parallel()

	t.Run("returns all reports with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewReportService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			require.NoError(t, svc.CreateReport(ctx, newTestReport("deal-1")))
		}

		reports, err := svc.FindReports(ctx, screamingtom.ReportFilter{})
		require.NoError(t, err)
		assert.Len(t, reports, 3)
	})

	t.Run("filters by deal ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewReportService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateReport(ctx, newTestReport("deal-a")))
		require.NoError(t, svc.CreateReport(ctx, newTestReport("deal-b")))

		dealID := "deal-a"
		reports, err := svc.FindReports(ctx, screamingtom.ReportFilter{DealID: &dealID})
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, "deal-a", reports[0].DealID)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewReportService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, svc.CreateReport(ctx, newTestReport("deal-1")))
		}

		reports, err := svc.FindReports(ctx, screamingtom.ReportFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, reports, 2)
	})

	t.Run("returns reports parseable round trip", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewReportService(db)
		ctx := context.Background()

		report := newTestReport("deal-1")
		require.NoError(t, svc.CreateReport(ctx, report))

		found, err := svc.FindReportByID(ctx, report.ID)
		require.NoError(t, err)
		assert.WithinDuration(t, report.CreatedAt, found.CreatedAt, time.Second)
	})
}
