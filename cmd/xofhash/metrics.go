package xofhash

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/go-xofhash/metrics"
)

const subsystem = "cli"

var (
	fileDuration = metrics.NewHistogramWithBuckets(
		"file_duration_seconds",
		subsystem,
		"time spent hashing one input",
		[]string{"command"},
		prometheus.ExponentialBuckets(0.001, 4, 8),
	)
	checkResults = metrics.NewCounter(
		"check_results_total",
		subsystem,
		"verified checksum lines",
		[]string{"result"},
	)
)
