package docmirror

import "context"

// Resource is the raw result of fetching a URL.
type Resource struct {
	Content     []byte
	ContentType string
}

// Fetcher retrieves remote resources.
type Fetcher interface {
	// Fetch performs a single GET request for the URL.
	// Returns EFETCH on non-success status codes and connection failures.
	Fetch(ctx context.Context, url string) (*Resource, error)
}

// RobotsPolicy decides whether a URL may be fetched.
type RobotsPolicy interface {
	// Allowed returns nil when the URL may be fetched and EDISALLOWED
	// otherwise, including when the rules cannot be retrieved.
	Allowed(ctx context.Context, url string) error
}

// SourceLoader loads the list of URLs to mirror.
type SourceLoader interface {
	// LoadSources returns the URLs in list order.
	// Returns ENOTFOUND if the list does not exist.
	LoadSources(ctx context.Context) ([]string, error)
}
