package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/marmos91/posixshim/pkg/errno"
)

// EmulatorMetrics provides observability for emulated POSIX calls.
//
// This interface is optional: when metrics are disabled NewEmulatorMetrics
// returns a no-op implementation.
type EmulatorMetrics interface {
	// RecordOperation records a completed emulated call. e is zero on success.
	RecordOperation(operation string, duration time.Duration, e errno.Errno)

	// RecordTranslation records one native-to-POSIX translation.
	//
	// Parameters:
	//   - table: "native", "winsock", "host" or "hresult"
	//   - mapped: false when the documented default was used
	RecordTranslation(table string, mapped bool)

	// RecordLinkHops records how many links a dereference followed.
	RecordLinkHops(hops int)
}

type emulatorMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	translationsTotal *prometheus.CounterVec
	linkHops          prometheus.Histogram
}

// NewEmulatorMetrics creates a Prometheus-backed EmulatorMetrics registered
// on the global registry, or a no-op one when metrics are disabled. Every
// emulator in the process records into the same series.
func NewEmulatorMetrics() EmulatorMetrics {
	if !IsEnabled() {
		return NoopEmulatorMetrics()
	}
	return newEmulatorMetrics(GetRegistry())
}

func newEmulatorMetrics(reg prometheus.Registerer) *emulatorMetrics {
	return &emulatorMetrics{
		operationsTotal: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "posixshim_operations_total",
				Help: "Total number of emulated calls by operation and resulting errno",
			},
			[]string{"operation", "errno"},
		)),
		operationDuration: register(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "posixshim_operation_duration_seconds",
				Help: "Duration of emulated calls in seconds",
				Buckets: []float64{
					0.00001, // 10µs
					0.0001,  // 100µs
					0.001,   // 1ms
					0.01,    // 10ms
					0.1,     // 100ms
					1.0,     // 1s
				},
			},
			[]string{"operation"},
		)),
		translationsTotal: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "posixshim_translations_total",
				Help: "Total number of native error translations by table and outcome",
			},
			[]string{"table", "result"},
		)),
		linkHops: register(reg, prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "posixshim_link_hops",
				Help:    "Number of links followed per dereference",
				Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
			},
		)),
	}
}

func (m *emulatorMetrics) RecordOperation(operation string, duration time.Duration, e errno.Errno) {
	label := "0"
	if e != 0 {
		label = e.Name()
	}
	m.operationsTotal.WithLabelValues(operation, label).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *emulatorMetrics) RecordTranslation(table string, mapped bool) {
	result := "mapped"
	if !mapped {
		result = "default"
	}
	m.translationsTotal.WithLabelValues(table, result).Inc()
}

func (m *emulatorMetrics) RecordLinkHops(hops int) {
	m.linkHops.Observe(float64(hops))
}

// NoopEmulatorMetrics returns an implementation that records nothing.
func NoopEmulatorMetrics() EmulatorMetrics {
	return noopEmulatorMetrics{}
}

type noopEmulatorMetrics struct{}

func (noopEmulatorMetrics) RecordOperation(operation string, duration time.Duration, e errno.Errno) {
}
func (noopEmulatorMetrics) RecordTranslation(table string, mapped bool) {}
func (noopEmulatorMetrics) RecordLinkHops(hops int)                     {}
