package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Decode outcomes.
const (
	OutcomeDecoded = "decoded"
	OutcomeOpaque  = "opaque"
	OutcomeInvalid = "invalid"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arpscope",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arpscope",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	decodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arpscope",
			Subsystem: "decoder",
			Name:      "messages_total",
			Help:      "Messages submitted for decoding by outcome and protocol label.",
		},
		[]string{"node", "outcome", "protocol"},
	)
	decodeBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arpscope",
			Subsystem: "decoder",
			Name:      "message_bytes",
			Help:      "Captured bytes per submitted message.",
			Buckets:   []float64{8, 16, 28, 32, 64, 128, 256, 512, 1024},
		},
		[]string{"node", "outcome"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, decodes, decodeBytes)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordDecode counts one decode attempt. protocol is empty unless decoded.
func RecordDecode(node, outcome, protocol string, size int) {
	RegisterMetrics()
	if protocol == "" {
		protocol = "none"
	}
	decodes.WithLabelValues(node, outcome, protocol).Inc()
	decodeBytes.WithLabelValues(node, outcome).Observe(float64(size))
}
