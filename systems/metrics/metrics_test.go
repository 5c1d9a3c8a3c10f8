package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scrapes metrics.
func scrape(t *testing.T, m *Metrics) string {
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

// Tests commands counters.
func TestCommandExecuted(t *testing.T) {
	m := NewMetrics().(*Metrics)
	m.CommandExecuted("unsecured", "", time.Second)
	m.CommandExecuted("unsecured", "", 2*time.Second)
	m.CommandExecuted("secured", "precondition", 0)

	body := scrape(t, m)
	assert.Contains(t, body, `gluehome_commands_total{kind="ok",target="unsecured"} 2`)
	assert.Contains(t, body, `gluehome_commands_total{kind="precondition",target="secured"} 1`)
	assert.Contains(t, body, `gluehome_command_duration_seconds_count{target="unsecured"} 2`)
}

// Tests refresh and served gauge.
func TestRefreshAndServed(t *testing.T) {
	m := NewMetrics().(*Metrics)
	m.LockRefreshed(true)
	m.LockRefreshed(false)
	m.LockRefreshed(false)
	m.LocksServed(3)

	body := scrape(t, m)
	assert.Contains(t, body, `gluehome_refresh_total{result="success"} 1`)
	assert.Contains(t, body, `gluehome_refresh_total{result="failure"} 2`)
	assert.Contains(t, body, "gluehome_locks_served 3")
}

// Tests that providers don't share registry.
func TestSeparateRegistries(t *testing.T) {
	first := NewMetrics().(*Metrics)
	second := NewMetrics().(*Metrics)
	first.LocksServed(2)

	assert.Contains(t, scrape(t, first), "gluehome_locks_served 2")
	assert.Contains(t, scrape(t, second), "gluehome_locks_served 0")
}
