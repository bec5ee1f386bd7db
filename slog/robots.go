package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docmirror"
)

// Ensure LoggingRobotsPolicy implements docmirror.RobotsPolicy.
var _ docmirror.RobotsPolicy = (*LoggingRobotsPolicy)(nil)

// LoggingRobotsPolicy wraps a RobotsPolicy with debug logging.
type LoggingRobotsPolicy struct {
	next   docmirror.RobotsPolicy
	logger *slog.Logger
}

// NewLoggingRobotsPolicy creates a new LoggingRobotsPolicy.
func NewLoggingRobotsPolicy(next docmirror.RobotsPolicy, logger *slog.Logger) *LoggingRobotsPolicy {
	return &LoggingRobotsPolicy{next: next, logger: logger}
}

// Allowed delegates to the wrapped policy and logs the decision.
func (p *LoggingRobotsPolicy) Allowed(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		p.logger.Debug("robots",
			"url", url,
			"allowed", err == nil,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.Allowed(ctx, url)
}
