// Package metrics exposes Prometheus counters for migration runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusNamespace prefixes every metric of the migrator.
const PrometheusNamespace = "cdn_migrator"

var (
	substitutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: PrometheusNamespace,
		Subsystem: "rewrite",
		Name:      "substitutions_total",
		Help:      "Number of URL occurrences replaced, by direction and column.",
	}, []string{"direction", "column"})
	rowsUpdated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: PrometheusNamespace,
		Subsystem: "rewrite",
		Name:      "rows_updated_total",
		Help:      "Number of rows written back after a rewrite, by direction and column.",
	}, []string{"direction", "column"})
	rowWriteFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: PrometheusNamespace,
		Subsystem: "rewrite",
		Name:      "row_write_failures_total",
		Help:      "Number of rewritten rows the store refused to persist, by direction and column.",
	}, []string{"direction", "column"})
	attachments = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: PrometheusNamespace,
		Subsystem: "attachments",
		Name:      "processed_total",
		Help:      "Number of attachments tagged (migrate) or untagged (undo).",
	}, []string{"direction"})
	tenants = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: PrometheusNamespace,
		Subsystem: "tenants",
		Name:      "processed_total",
		Help:      "Number of tenant partitions fully processed.",
	}, []string{"direction"})
)

func init() {
	prometheus.MustRegister(substitutions, rowsUpdated, rowWriteFailures, attachments, tenants)
}

// ObserveSubstitutions adds n replaced URL occurrences.
func ObserveSubstitutions(direction, column string, n int) {
	substitutions.WithLabelValues(direction, column).Add(float64(n))
}

// IncRowsUpdated counts one persisted row.
func IncRowsUpdated(direction, column string) {
	rowsUpdated.WithLabelValues(direction, column).Inc()
}

// IncRowWriteFailures counts one row the store refused.
func IncRowWriteFailures(direction, column string) {
	rowWriteFailures.WithLabelValues(direction, column).Inc()
}

// ObserveAttachments adds n processed attachments.
func ObserveAttachments(direction string, n int) {
	attachments.WithLabelValues(direction).Add(float64(n))
}

// IncTenants counts one completed tenant.
func IncTenants(direction string) {
	tenants.WithLabelValues(direction).Inc()
}
