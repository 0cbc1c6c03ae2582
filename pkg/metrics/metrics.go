// Package metrics provides Prometheus instrumentation for the ordering core.
//
// Counters are registered on DefaultRegistry at init; the CLI prints them
// with Snapshot:
//
//	for name, v := range metrics.Snapshot() { fmt.Println(name, v) }
package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// NotificationsDispatched counts notification sends by outcome.
	NotificationsDispatched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "acme",
			Subsystem: "notification",
			Name:      "dispatch_total",
			Help:      "Total notifications dispatched.",
		},
		[]string{"status"}, // "sent" | "failed"
	)

	// OrdersPlaced counts orders by variant and outcome.
	OrdersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "acme",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total orders handed to the notification sender.",
		},
		[]string{"variant", "outcome"}, // "deliver_by" | "flags"; "success" | "failure"
	)
)

// DefaultRegistry holds every acme metric.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(NotificationsDispatched, OrdersPlaced)
}

// Register lets callers add their own collector to the registry.
func Register(c prometheus.Collector) error {
	return DefaultRegistry.Register(c)
}

// RecordDispatch counts one notification send.
func RecordDispatch(sent bool) {
	status := "failed"
	if sent {
		status = "sent"
	}
	NotificationsDispatched.WithLabelValues(status).Inc()
}

// RecordOrder counts one placed order.
func RecordOrder(variant string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	OrdersPlaced.WithLabelValues(variant, outcome).Inc()
}

// Snapshot gathers counter values keyed as name{label="value",...}.
func Snapshot() map[string]float64 {
	out := map[string]float64{}

	families, err := DefaultRegistry.Gather()
	if err != nil {
		return out
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, lp.GetName()+`="`+lp.GetValue()+`"`)
			}
			sort.Strings(pairs)

			key := mf.GetName()
			if len(pairs) > 0 {
				key += "{" + strings.Join(pairs, ",") + "}"
			}
			out[key] = m.GetCounter().GetValue()
		}
	}
	return out
}
