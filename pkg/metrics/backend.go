package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BackendMetrics provides observability for native backends and the stores
// behind them.
type BackendMetrics interface {
	// RecordStorageOperation records a low-level storage call.
	//
	// Parameters:
	//   - operation: e.g. "get", "put", "head_object", "list_objects"
	//   - duration: Time taken
	//   - err: Error if failed
	RecordStorageOperation(operation string, duration time.Duration, err error)
}

type backendMetrics struct {
	backend            string
	storageOpsTotal    *prometheus.CounterVec
	storageOpsDuration *prometheus.HistogramVec
}

// NewBackendMetrics creates a Prometheus-backed BackendMetrics labelled with
// the backend type, or a no-op one when metrics are disabled. Backends built
// in the same process share one set of series, told apart by the label.
func NewBackendMetrics(backend string) BackendMetrics {
	if !IsEnabled() {
		return noopBackendMetrics{}
	}
	return newBackendMetrics(GetRegistry(), backend)
}

func newBackendMetrics(reg prometheus.Registerer, backend string) *backendMetrics {
	return &backendMetrics{
		backend: backend,
		storageOpsTotal: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "posixshim_backend_storage_operations_total",
				Help: "Total number of backend storage operations by backend, operation and status",
			},
			[]string{"backend", "operation", "status"},
		)),
		storageOpsDuration: register(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "posixshim_backend_storage_operation_duration_seconds",
				Help: "Duration of backend storage operations in seconds",
				Buckets: []float64{
					0.0001, // 100µs
					0.001,  // 1ms
					0.01,   // 10ms
					0.1,    // 100ms
					1.0,    // 1s
					5.0,    // 5s
				},
			},
			[]string{"backend", "operation"},
		)),
	}
}

func (m *backendMetrics) RecordStorageOperation(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.storageOpsTotal.WithLabelValues(m.backend, operation, status).Inc()
	m.storageOpsDuration.WithLabelValues(m.backend, operation).Observe(duration.Seconds())
}

type noopBackendMetrics struct{}

func (noopBackendMetrics) RecordStorageOperation(operation string, duration time.Duration, err error) {
}

// NoopBackendMetrics returns an implementation that records nothing.
func NoopBackendMetrics() BackendMetrics {
	return noopBackendMetrics{}
}
