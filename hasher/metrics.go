package hasher

import (
	"github.com/spacemeshos/go-xofhash/metrics"
)

const subsystem = "hasher"

var (
	absorbedBytes = metrics.NewCounter(
		"absorbed_bytes_total",
		subsystem,
		"bytes fed into hashers",
		[]string{"mode"},
	)
	squeezedBytes = metrics.NewCounter(
		"squeezed_bytes_total",
		subsystem,
		"output bytes produced by digests and readers",
		[]string{"mode"},
	)
	readersSpawned = metrics.NewCounter(
		"readers_total",
		subsystem,
		"readers spawned from hashers",
		[]string{"mode"},
	)
	constructErrors = metrics.NewCounter(
		"construct_errors_total",
		subsystem,
		"failed hasher constructions",
		[]string{"reason"},
	)
)
