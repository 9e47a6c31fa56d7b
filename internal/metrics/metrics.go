// Package metrics holds the Prometheus collectors of the legality service
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	levelUpQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legality_levelup_queries_total",
		Help: "Total number of level-up legality queries by generation and outcome",
	}, []string{"generation", "outcome"})

	moveListingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legality_move_listings_total",
		Help: "Total number of level-up move listings by generation",
	}, []string{"generation"})

	levelVerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legality_level_verdicts_total",
		Help: "Total number of level verdicts by severity and reason code",
	}, []string{"severity", "code"})

	batchScansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "legality_batch_scans_total",
		Help: "Total number of batch verification scans",
	})

	batchRecordsHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "legality_batch_scan_records",
		Help:    "Number of records per batch verification scan",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	tablesLoadedGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "legality_learnset_tables_loaded",
		Help: "Number of learnset tables in the active registry",
	})
)

// ObserveLevelUpQuery counts one resolution
func ObserveLevelUpQuery(generation int, outcome string) {
	levelUpQueriesTotal.WithLabelValues(strconv.Itoa(generation), outcome).Inc()
}

// ObserveMoveListing counts one listing
func ObserveMoveListing(generation int) {
	moveListingsTotal.WithLabelValues(strconv.Itoa(generation)).Inc()
}

// ObserveVerdict counts one level verdict
func ObserveVerdict(severity, code string) {
	levelVerdictsTotal.WithLabelValues(severity, code).Inc()
}

// ObserveBatchScan counts one batch scan of records
func ObserveBatchScan(records int) {
	batchScansTotal.Inc()
	batchRecordsHistogram.Observe(float64(records))
}

// SetTablesLoaded records the size of the active registry
func SetTablesLoaded(n int) {
	tablesLoadedGauge.Set(float64(n))
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
