package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/pkg/health"
)

func TestChecker_Run(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	pass := func(ctx context.Context) error { return nil }
	fail := func(ctx context.Context) error { return errors.New("cannot connect") }

	t.Run("all checks healthy", func(t *testing.T) {
		t.Parallel()

		checker := health.NewChecker("test-service", "2.0.0")
		checker.AddCheck("db", pass)
		checker.AddCheck("cache", pass)

		report := checker.Run(ctx)
		assert.Equal(t, health.StatusHealthy, report.Status)
		assert.Equal(t, "test-service", report.Service)
		assert.Equal(t, "2.0.0", report.Version)
		assert.Len(t, report.Components, 2)
	})

	t.Run("one failing check degrades the service", func(t *testing.T) {
		t.Parallel()

		checker := health.NewChecker("test", "")
		checker.AddCheck("db", pass)
		checker.AddCheck("cache", fail)

		report := checker.Run(ctx)
		assert.Equal(t, health.StatusDegraded, report.Status)

		require.Len(t, report.Components, 2)
		assert.Equal(t, health.StatusHealthy, report.Components[0].Status)
		assert.Equal(t, health.StatusUnhealthy, report.Components[1].Status)
		assert.Equal(t, "cannot connect", report.Components[1].Message)
	})

	t.Run("components keep registration order", func(t *testing.T) {
		t.Parallel()

		checker := health.NewChecker("test", "")
		checker.AddCheck("zeta", pass)
		checker.AddCheck("alpha", pass)

		report := checker.Run(ctx)
		require.Len(t, report.Components, 2)
		assert.Equal(t, "zeta", report.Components[0].Name)
		assert.Equal(t, "alpha", report.Components[1].Name)
	})

	t.Run("no checks means healthy liveness", func(t *testing.T) {
		t.Parallel()

		checker := health.NewChecker("test", "")
		report := checker.Run(ctx)
		assert.Equal(t, health.StatusHealthy, report.Status)
		assert.Empty(t, report.Components)
		assert.GreaterOrEqual(t, report.UptimeSeconds, 0.0)
	})
}

func TestTCPCheck(t *testing.T) {
	t.Parallel()

	t.Run("unreachable endpoint fails", func(t *testing.T) {
		t.Parallel()

		check := health.TCPCheck("127.0.0.1:1", 100*time.Millisecond)
		assert.Error(t, check(context.Background()))
	})

	t.Run("reachable endpoint passes", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		addr := srv.Listener.Addr().String()
		check := health.TCPCheck(addr, time.Second)
		assert.NoError(t, check(context.Background()))
	})
}

func TestChecker_Handler(t *testing.T) {
	t.Parallel()

	t.Run("healthy returns 200", func(t *testing.T) {
		t.Parallel()

		checker := health.NewChecker("test", "1.0.0")
		checker.AddCheck("ping", func(ctx context.Context) error { return nil })

		rec := httptest.NewRecorder()
		checker.Handler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var report health.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, health.StatusHealthy, report.Status)
		assert.Equal(t, "1.0.0", report.Version)
	})

	t.Run("degraded returns 503", func(t *testing.T) {
		t.Parallel()

		checker := health.NewChecker("test", "")
		checker.AddCheck("db", func(ctx context.Context) error { return errors.New("down") })

		rec := httptest.NewRecorder()
		checker.Handler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
