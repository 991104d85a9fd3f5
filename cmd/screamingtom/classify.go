package main

import (
	"fmt"
	"io"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	assessment, err := deps.Assessor.AssessDeal(deps.Ctx, c.DealID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", screamingtom.ErrorMessage(err))
		return err
	}

	printAssessment(deps.Stdout, assessment)
	return nil
}

// printAssessment writes a one-deal summary in the shared batch/classify format.
func printAssessment(w io.Writer, a *screamingtom.Assessment) {
	if a.Inconclusive {
		fmt.Fprintf(w, "%s  %s  pages=%d files=%d  INCONCLUSIVE (verify manually)\n",
			a.DealID, a.SeedURL, a.PageCount, a.FileCount)
		return
	}
	fmt.Fprintf(w, "%s  %s  pages=%d files=%d  %s\n",
		a.DealID, a.SeedURL, a.PageCount, a.FileCount, a.Package)
}
