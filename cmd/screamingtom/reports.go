package main

import (
	"fmt"
	"time"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Run executes the reports command.
func (c *ReportsCmd) Run(deps *Dependencies) error {
	filter := screamingtom.ReportFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Deal != "" {
		filter.DealID = &c.Deal
	}

	reports, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", screamingtom.ErrorMessage(err))
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports found. Use 'screamingtom classify' to run an assessment.")
		return nil
	}

	for _, r := range reports {
		pkg := r.Package
		if pkg == "" {
			pkg = "INCONCLUSIVE"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  pages=%d files=%d  %s  %s\n",
			r.ID, r.DealID, r.SeedURL, r.PageCount, r.FileCount, pkg,
			r.CreatedAt.Format(time.RFC3339))
	}

	return nil
}
