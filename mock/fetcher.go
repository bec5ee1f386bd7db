package mock

import (
	"context"

	"github.com/fwojciec/docmirror"
)

var (
	_ docmirror.Fetcher      = (*Fetcher)(nil)
	_ docmirror.RobotsPolicy = (*RobotsPolicy)(nil)
	_ docmirror.SourceLoader = (*SourceLoader)(nil)
)

// Fetcher is a mock implementation of docmirror.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*docmirror.Resource, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*docmirror.Resource, error) {
	return f.FetchFn(ctx, url)
}

// RobotsPolicy is a mock implementation of docmirror.RobotsPolicy.
type RobotsPolicy struct {
	AllowedFn func(ctx context.Context, url string) error
}

func (p *RobotsPolicy) Allowed(ctx context.Context, url string) error {
	return p.AllowedFn(ctx, url)
}

// SourceLoader is a mock implementation of docmirror.SourceLoader.
type SourceLoader struct {
	LoadSourcesFn func(ctx context.Context) ([]string, error)
}

func (s *SourceLoader) LoadSources(ctx context.Context) ([]string, error) {
	return s.LoadSourcesFn(ctx)
}
