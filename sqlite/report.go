package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Compile-time interface verification.
var _ screamingtom.ReportService = (*ReportService)(nil)

// ReportService implements screamingtom.ReportService using SQLite.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// CreateReport persists a new crawl report.
func (s *ReportService) CreateReport(ctx context.Context, report *screamingtom.CrawlReport) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	report.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (id, deal_id, seed_url, page_count, file_count, package, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.DealID, report.SeedURL, report.PageCount, report.FileCount,
		report.Package, report.CreatedAt.Format(time.RFC3339))

	return err
}

// FindReportByID retrieves a report by ID.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*screamingtom.CrawlReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, deal_id, seed_url, page_count, file_count, package, created_at
		FROM reports
		WHERE id = ?
	`, id)

	report, err := scanReport(row.Scan)
	if err == sql.ErrNoRows {
		return nil, screamingtom.Errorf(screamingtom.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// FindReports retrieves reports matching the filter, newest first.
func (s *ReportService) FindReports(ctx context.Context, filter screamingtom.ReportFilter) ([]*screamingtom.CrawlReport, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, deal_id, seed_url, page_count, file_count, package, created_at FROM reports WHERE 1=1")

	if filter.DealID != nil {
		query.WriteString(" AND deal_id = ?")
		args = append(args, *filter.DealID)
	}

	query.WriteString(" ORDER BY created_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*screamingtom.CrawlReport
	for rows.Next() {
		report, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// scanReport reads one report row using the given scan function.
func scanReport(scan func(dest ...any) error) (*screamingtom.CrawlReport, error) {
	var report screamingtom.CrawlReport
	var createdAt string

	err := scan(&report.ID, &report.DealID, &report.SeedURL,
		&report.PageCount, &report.FileCount, &report.Package, &createdAt)
	if err != nil {
		return nil, err
	}

	report.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &report, nil
}
