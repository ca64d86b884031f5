package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/spacemeshos/go-xofhash/config"
	"github.com/spacemeshos/go-xofhash/engine"
)

// AddFlags adds the process wide flags. Defaults come from cfg.
func AddFlags(flags *pflag.FlagSet, cfg *config.Config) {
	/** ======================== BaseConfig Flags ========================== **/
	flags.StringP("config", "c", cfg.ConfigFile, "Set Load configuration from file")
	flags.Bool("metrics", cfg.CollectMetrics, "serve metrics while the command runs")
	flags.String("metrics-addr", cfg.MetricsAddr, "metric server listen address")
	flags.String("metrics-push", cfg.MetricsPush, "push metrics to this pushgateway url before exiting")

	/** ======================== Logging Flags ========================== **/
	flags.String("log-level", cfg.LOGGING.Level, "logging level")
	flags.String("log-encoder", cfg.LOGGING.Encoder,
		fmt.Sprintf("log encoder, one of %s or %s", config.ConsoleLogEncoder, config.JSONLogEncoder))

	/** ======================== Hash Flags ========================== **/
	flags.String("engine", cfg.HASH.Engine,
		fmt.Sprintf("BLAKE3 implementation. options %v", engine.Names()))
}

// AddHashFlags adds the flags of commands that produce output.
func AddHashFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.IntP("length", "l", cfg.HASH.Length, "number of output bytes")
	flags.String("encoding", cfg.HASH.Encoding,
		fmt.Sprintf("output encoding. options %v", config.Encodings))
	flags.IntP("jobs", "j", cfg.HASH.Jobs, "number of files hashed in parallel")
	flags.Int("context-cache-size", cfg.HASH.ContextCacheSize, "number of derivation contexts kept ready")
}
