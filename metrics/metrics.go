// Package metrics provides Prometheus metrics collection for the document
// understanding pipeline:
//   - diet_documents_parsed_total: Counter with status label
//   - diet_rows_classified_total: Counter with row class label
//   - diet_rows_discarded_total: Counter for rows dropped as unparseable
//   - diet_substitution_groups_total: Counter for extracted CAD groups
//   - diet_parse_duration_seconds: Histogram of whole-document parse time
//   - receipt_lines_processed_total: Counter with outcome label
//
// All metrics are automatically registered with the Prometheus default
// registry during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	DocumentsParsedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diet_documents_parsed_total",
			Help: "Total diet documents parsed",
		},
		[]string{"status"},
	)

	RowsClassifiedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diet_rows_classified_total",
			Help: "Total document rows by classification",
		},
		[]string{"class"},
	)

	RowsDiscardedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "diet_rows_discarded_total",
			Help: "Rows dropped as boilerplate or unparseable",
		},
	)

	SubstitutionGroupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "diet_substitution_groups_total",
			Help: "Substitution groups extracted from documents",
		},
	)

	ParseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "diet_parse_duration_seconds",
			Help:    "Whole-document parse latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	ReceiptLinesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "receipt_lines_processed_total",
			Help: "Receipt lines by matching outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(DocumentsParsedTotal)
	prometheus.MustRegister(RowsClassifiedTotal)
	prometheus.MustRegister(RowsDiscardedTotal)
	prometheus.MustRegister(SubstitutionGroupsTotal)
	prometheus.MustRegister(ParseDuration)
	prometheus.MustRegister(ReceiptLinesTotal)
}
