package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAuthAttempt(t *testing.T) {
	initial := testutil.ToFloat64(AuthAttemptsTotal.WithLabelValues("login", "success"))

	ObserveAuthAttempt("login", "success")

	updated := testutil.ToFloat64(AuthAttemptsTotal.WithLabelValues("login", "success"))
	assert.Equal(t, initial+1, updated, "AuthAttemptsTotal should increment by 1")
}

func TestObserveAuthAttemptFailure(t *testing.T) {
	initial := testutil.ToFloat64(AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials"))

	ObserveAuthAttempt("login", "invalid_credentials")

	updated := testutil.ToFloat64(AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials"))
	assert.Equal(t, initial+1, updated, "failed attempts should be counted separately")
}

func TestObserveNewsEvent(t *testing.T) {
	initial := testutil.ToFloat64(NewsEventsTotal.WithLabelValues("create", "success"))

	ObserveNewsEvent("create", "success")

	updated := testutil.ToFloat64(NewsEventsTotal.WithLabelValues("create", "success"))
	assert.Equal(t, initial+1, updated, "NewsEventsTotal should increment by 1")
}

func TestHTTPMetricsExist(t *testing.T) {
	// Verify HTTP metrics are properly initialized
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	// Increment and verify
	initial := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	updated := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initial+1, updated)
}

func TestDBConnectionPoolSizeMetric(t *testing.T) {
	DBConnectionPoolSize.WithLabelValues("total").Set(10)
	DBConnectionPoolSize.WithLabelValues("idle").Set(5)
	DBConnectionPoolSize.WithLabelValues("in_use").Set(5)

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

// mockPoolStats implements PoolStats for testing
type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

// mockPoolStatsProvider implements PoolStatsProvider for testing
type mockPoolStatsProvider struct {
	totalConns    int32
	idleConns     int32
	acquiredConns int32
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return &mockPoolStats{
		total:    m.totalConns,
		idle:     m.idleConns,
		acquired: m.acquiredConns,
	}
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	mockProvider := &mockPoolStatsProvider{
		totalConns:    10,
		idleConns:     5,
		acquiredConns: 5,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)

	collector.Start(10 * time.Millisecond)

	// Let it run for a bit to collect stats
	time.Sleep(30 * time.Millisecond)

	total := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total"))
	idle := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle"))
	inUse := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use"))

	assert.Equal(t, float64(10), total, "Total connections should be 10")
	assert.Equal(t, float64(5), idle, "Idle connections should be 5")
	assert.Equal(t, float64(5), inUse, "In-use connections should be 5")

	collector.Stop()
}
