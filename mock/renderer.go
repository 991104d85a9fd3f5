// Package mock provides hand-written mock implementations of the
// screamingtom domain interfaces for use in tests.
package mock

import (
	"context"

	screamingtom "github.com/TBB10/ScreamingTom"
)

var _ screamingtom.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of screamingtom.Renderer.
type Renderer struct {
	NavigateFn         func(ctx context.Context, url string) (int, error)
	HTMLFn             func(ctx context.Context) (string, error)
	ExtractAnchorsFn   func(ctx context.Context) ([]string, error)
	ExtractImagesFn    func(ctx context.Context) ([]string, error)
	ExtractFileLinksFn func(ctx context.Context) ([]string, error)
	CloseFn            func() error
}

func (r *Renderer) Navigate(ctx context.Context, url string) (int, error) {
	return r.NavigateFn(ctx, url)
}

func (r *Renderer) HTML(ctx context.Context) (string, error) {
	if r.HTMLFn == nil {
		return "", nil
	}
	return r.HTMLFn(ctx)
}

func (r *Renderer) ExtractAnchors(ctx context.Context) ([]string, error) {
	return r.ExtractAnchorsFn(ctx)
}

func (r *Renderer) ExtractImages(ctx context.Context) ([]string, error) {
	return r.ExtractImagesFn(ctx)
}

func (r *Renderer) ExtractFileLinks(ctx context.Context) ([]string, error) {
	return r.ExtractFileLinksFn(ctx)
}

func (r *Renderer) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}
