package robotstxt_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/robotstxt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func robotsServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			t.Errorf("unexpected request for %s", r.URL.Path)
			return
		}
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestPolicy_Allowed(t *testing.T) {
	t.Parallel()

	t.Run("allows paths not covered by rules", func(t *testing.T) {
		t.Parallel()

		server, _ := robotsServer(t, http.StatusOK, "User-agent: *\nDisallow: /private/\n")
		policy := robotstxt.NewPolicy()

		err := policy.Allowed(context.Background(), server.URL+"/docs/intro")

		require.NoError(t, err)
	})

	t.Run("disallows paths covered by rules", func(t *testing.T) {
		t.Parallel()

		server, _ := robotsServer(t, http.StatusOK, "User-agent: *\nDisallow: /private/\n")
		policy := robotstxt.NewPolicy()

		err := policy.Allowed(context.Background(), server.URL+"/private/page")

		require.Error(t, err)
		assert.Equal(t, docmirror.EDISALLOWED, docmirror.ErrorCode(err))
		assert.Contains(t, docmirror.ErrorMessage(err), "disallows")
	})

	t.Run("evaluates the configured user agent", func(t *testing.T) {
		t.Parallel()

		server, _ := robotsServer(t, http.StatusOK, "User-agent: blockedbot\nDisallow: /\n")

		blocked := robotstxt.NewPolicy(robotstxt.WithUserAgent("BlockedBot/1.0"))
		other := robotstxt.NewPolicy(robotstxt.WithUserAgent("FriendlyBot/1.0"))

		assert.Error(t, blocked.Allowed(context.Background(), server.URL+"/docs"))
		assert.NoError(t, other.Allowed(context.Background(), server.URL+"/docs"))
	})

	t.Run("missing robots.txt allows everything", func(t *testing.T) {
		t.Parallel()

		server, _ := robotsServer(t, http.StatusNotFound, "")
		policy := robotstxt.NewPolicy()

		err := policy.Allowed(context.Background(), server.URL+"/anything")

		require.NoError(t, err)
	})

	t.Run("server error disallows", func(t *testing.T) {
		t.Parallel()

		server, _ := robotsServer(t, http.StatusInternalServerError, "")
		policy := robotstxt.NewPolicy()

		err := policy.Allowed(context.Background(), server.URL+"/docs")

		require.Error(t, err)
		assert.Equal(t, docmirror.EDISALLOWED, docmirror.ErrorCode(err))
	})

	t.Run("forbidden robots.txt disallows", func(t *testing.T) {
		t.Parallel()

		server, _ := robotsServer(t, http.StatusForbidden, "")
		policy := robotstxt.NewPolicy()

		err := policy.Allowed(context.Background(), server.URL+"/docs")

		require.Error(t, err)
		assert.Equal(t, docmirror.EDISALLOWED, docmirror.ErrorCode(err))
		assert.Contains(t, docmirror.ErrorMessage(err), "unavailable")
	})

	t.Run("unreachable host fails closed", func(t *testing.T) {
		t.Parallel()

		policy := robotstxt.NewPolicy(robotstxt.WithTimeout(100 * time.Millisecond))

		err := policy.Allowed(context.Background(), "http://non-existent-host.invalid/docs")

		require.Error(t, err)
		assert.Equal(t, docmirror.EDISALLOWED, docmirror.ErrorCode(err))
		assert.Contains(t, docmirror.ErrorMessage(err), "unavailable")
	})

	t.Run("invalid URL fails closed", func(t *testing.T) {
		t.Parallel()

		err := robotstxt.NewPolicy().Allowed(context.Background(), "not a url")

		require.Error(t, err)
		assert.Equal(t, docmirror.EDISALLOWED, docmirror.ErrorCode(err))
	})

	t.Run("caches rules per origin", func(t *testing.T) {
		t.Parallel()

		server, hits := robotsServer(t, http.StatusOK, "User-agent: *\nDisallow: /private/\n")
		policy := robotstxt.NewPolicy()

		require.NoError(t, policy.Allowed(context.Background(), server.URL+"/a"))
		require.NoError(t, policy.Allowed(context.Background(), server.URL+"/b"))
		require.Error(t, policy.Allowed(context.Background(), server.URL+"/private/c"))

		assert.Equal(t, int32(1), atomic.LoadInt32(hits))
	})
}
