// Package robotstxt implements docmirror.RobotsPolicy on top of
// github.com/temoto/robotstxt. Rules that cannot be retrieved or parsed
// disallow the fetch.
package robotstxt

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/docmirror"
	"github.com/temoto/robotstxt"
)

// DefaultTimeout bounds the robots.txt request.
const DefaultTimeout = 30 * time.Second

// Ensure Policy implements docmirror.RobotsPolicy at compile time.
var _ docmirror.RobotsPolicy = (*Policy)(nil)

// Policy checks URLs against the robots.txt of their origin.
// Parsed rules are cached per origin for the lifetime of the Policy.
type Policy struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string

	mu    sync.Mutex
	rules map[string]*robotstxt.RobotsData
}

// Option configures a Policy.
type Option func(*Policy)

// WithTimeout sets the timeout for robots.txt requests.
func WithTimeout(d time.Duration) Option {
	return func(p *Policy) {
		p.timeout = d
	}
}

// WithUserAgent sets the agent evaluated against the rules and sent with
// the robots.txt request.
func WithUserAgent(ua string) Option {
	return func(p *Policy) {
		p.userAgent = ua
	}
}

// NewPolicy creates a new Policy.
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		timeout:   DefaultTimeout,
		userAgent: docmirror.DefaultUserAgent,
		rules:     make(map[string]*robotstxt.RobotsData),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.client = &http.Client{
		Timeout: p.timeout,
	}

	return p
}

// Allowed returns nil if the user agent may fetch rawURL.
func (p *Policy) Allowed(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return docmirror.Errorf(docmirror.EDISALLOWED, "robots rules unavailable for %s: invalid URL", rawURL)
	}

	rules, err := p.rulesFor(ctx, u)
	if err != nil {
		return err
	}

	if !rules.TestAgent(u.RequestURI(), p.userAgent) {
		return docmirror.Errorf(docmirror.EDISALLOWED, "robots.txt disallows %s", rawURL)
	}
	return nil
}

func (p *Policy) rulesFor(ctx context.Context, u *url.URL) (*robotstxt.RobotsData, error) {
	origin := u.Scheme + "://" + u.Host

	p.mu.Lock()
	rules, ok := p.rules[origin]
	p.mu.Unlock()
	if ok {
		return rules, nil
	}

	rules, err := p.fetchRules(ctx, origin)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.rules[origin] = rules
	p.mu.Unlock()

	return rules, nil
}

func (p *Policy) fetchRules(ctx context.Context, origin string) (*robotstxt.RobotsData, error) {
	robotsURL := origin + "/robots.txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, unavailable(robotsURL, err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, unavailable(robotsURL, err)
	}
	defer resp.Body.Close()

	// Authorization failures mean the rules exist but are hidden from us.
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, docmirror.Errorf(docmirror.EDISALLOWED, "robots rules unavailable at %s: HTTP %d", robotsURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unavailable(robotsURL, err)
	}

	// 4xx means no rules; 5xx disallows the whole origin.
	rules, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil, unavailable(robotsURL, err)
	}
	return rules, nil
}

func unavailable(robotsURL string, err error) error {
	return docmirror.Errorf(docmirror.EDISALLOWED, "robots rules unavailable at %s: %v", robotsURL, err)
}
