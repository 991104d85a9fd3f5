package main

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	screamingtom "github.com/TBB10/ScreamingTom"
)

// Run executes the batch command. Deals are assessed concurrently up to the
// configured limit; one failed deal does not stop the others, and all
// failures are reported together at the end.
func (c *BatchCmd) Run(deps *Dependencies) error {
	var mu sync.Mutex
	var failed int

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for _, dealID := range c.DealIDs {
		dealID := dealID
		g.Go(func() error {
			assessment, err := deps.Assessor.AssessDeal(ctx, dealID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				fmt.Fprintf(deps.Stderr, "error: deal %s: %s\n", dealID, screamingtom.ErrorMessage(err))
				return nil
			}
			printAssessment(deps.Stdout, assessment)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d deals failed", failed, len(c.DealIDs))
	}
	return nil
}
