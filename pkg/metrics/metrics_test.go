package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/posixshim/pkg/errno"
)

func TestEmulatorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newEmulatorMetrics(reg)

	m.RecordOperation("stat", time.Millisecond, 0)
	m.RecordOperation("stat", time.Millisecond, errno.ENOENT)
	m.RecordOperation("stat", time.Millisecond, errno.ENOENT)
	m.RecordTranslation("native", true)
	m.RecordTranslation("native", false)
	m.RecordLinkHops(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("stat", "0")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("stat", "ENOENT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.translationsTotal.WithLabelValues("native", "default")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.linkHops))
}

func TestBackendMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newBackendMetrics(reg, "badger")

	m.RecordStorageOperation("get", time.Millisecond, nil)
	m.RecordStorageOperation("get", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.storageOpsTotal.WithLabelValues("badger", "get", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storageOpsTotal.WithLabelValues("badger", "get", "error")))
}

func TestDisabledConstructorsAreNoop(t *testing.T) {
	require.False(t, IsEnabled())

	assert.IsType(t, noopEmulatorMetrics{}, NewEmulatorMetrics())
	assert.IsType(t, noopBackendMetrics{}, NewBackendMetrics("memory"))

	NewEmulatorMetrics().RecordOperation("stat", time.Second, errno.EIO)
}

// useRegistry installs a fresh global registry for the duration of the test.
func useRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	prev := registry
	registry = prometheus.NewRegistry()
	t.Cleanup(func() { registry = prev })
	return registry
}

func TestConstructorsShareCollectors(t *testing.T) {
	reg := useRegistry(t)
	require.True(t, IsEnabled())

	var badger, s3 BackendMetrics
	require.NotPanics(t, func() {
		badger = NewBackendMetrics("badger")
		s3 = NewBackendMetrics("s3")
	})
	badger.RecordStorageOperation("get", time.Millisecond, nil)
	s3.RecordStorageOperation("head_object", time.Millisecond, errors.New("boom"))
	s3.RecordStorageOperation("head_object", time.Millisecond, errors.New("boom"))

	var first, second EmulatorMetrics
	require.NotPanics(t, func() {
		first = NewEmulatorMetrics()
		second = NewEmulatorMetrics()
	})
	first.RecordOperation("stat", time.Millisecond, 0)
	second.RecordOperation("stat", time.Millisecond, 0)

	shared := badger.(*backendMetrics).storageOpsTotal
	assert.Same(t, shared, s3.(*backendMetrics).storageOpsTotal)
	assert.Equal(t, 1.0, testutil.ToFloat64(shared.WithLabelValues("badger", "get", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(shared.WithLabelValues("s3", "head_object", "error")))

	ops := first.(*emulatorMetrics).operationsTotal
	assert.Same(t, ops, second.(*emulatorMetrics).operationsTotal)
	assert.Equal(t, 2.0, testutil.ToFloat64(ops.WithLabelValues("stat", "0")))

	n, err := testutil.GatherAndCount(reg, "posixshim_backend_storage_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestServerDisabled(t *testing.T) {
	s := NewServer(ServerConfig{})
	assert.Equal(t, DefaultPort, s.Port())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/metrics")

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServerEnabled(t *testing.T) {
	useRegistry(t)
	NewEmulatorMetrics().RecordOperation("stat", time.Millisecond, errno.ENOENT)
	NewBackendMetrics("memory").RecordStorageOperation("get", time.Millisecond, nil)

	h := NewServer(ServerConfig{Port: 19464}).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `posixshim_operations_total{errno="ENOENT",operation="stat"} 1`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "posixshim_operations_total")
	assert.Contains(t, rec.Body.String(), "posixshim_backend_storage_operations_total")
	assert.NotContains(t, rec.Body.String(), "go_goroutines")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestServerStartStop(t *testing.T) {
	s := NewServer(ServerConfig{Port: 19465})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.NoError(t, s.Stop(context.Background()))
}
