// Package config contains the configuration of the xofhash command.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-xofhash/engine"
	"github.com/spacemeshos/go-xofhash/hasher"
)

const defaultConfigFileName = "./xofhash.toml"

// Output encodings accepted by the sum command.
const (
	HexEncoding       = "hex"
	Base64Encoding    = "base64"
	Base32Encoding    = "base32"
	Base58BTCEncoding = "base58btc"
)

// Encodings lists the output encodings in the order they are documented.
var Encodings = []string{HexEncoding, Base64Encoding, Base32Encoding, Base58BTCEncoding}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config defines the top level configuration of the command.
type Config struct {
	BaseConfig `mapstructure:"main"`
	HASH       HashConfig   `mapstructure:"hash"`
	LOGGING    LoggerConfig `mapstructure:"logging"`
}

// BaseConfig defines the process wide settings.
type BaseConfig struct {
	ConfigFile string `mapstructure:"config"`

	CollectMetrics bool   `mapstructure:"metrics"`
	MetricsAddr    string `mapstructure:"metrics-addr"`
	MetricsPush    string `mapstructure:"metrics-push"`
}

// HashConfig holds the defaults of the hashing commands.
type HashConfig struct {
	Engine   string `mapstructure:"engine"`
	Length   int    `mapstructure:"length"`
	Encoding string `mapstructure:"encoding"`
	// Jobs is the number of files hashed in parallel.
	Jobs             int `mapstructure:"jobs"`
	ContextCacheSize int `mapstructure:"context-cache-size"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		HASH:       defaultHashConfig(),
		LOGGING:    defaultLoggingConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	return BaseConfig{
		MetricsAddr: "127.0.0.1:9090",
	}
}

func defaultHashConfig() HashConfig {
	return HashConfig{
		Engine:           engine.Default,
		Length:           hasher.Size,
		Encoding:         HexEncoding,
		Jobs:             4,
		ContextCacheSize: hasher.DefaultContextCacheSize,
	}
}

// LoadConfig load the config file. Without a location the default file is
// read if it exists.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		if _, err := os.Stat(defaultConfigFileName); err != nil {
			return nil
		}
		fileLocation = defaultConfigFileName
	}

	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %w", err)
	}
	return nil
}

// Validate checks that the values are usable.
func (cfg *Config) Validate() error {
	if _, err := engine.Lookup(cfg.HASH.Engine); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.HASH.Length < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidConfig, cfg.HASH.Length)
	}
	if !validEncoding(cfg.HASH.Encoding) {
		return fmt.Errorf("%w: encoding %q, options %v", ErrInvalidConfig, cfg.HASH.Encoding, Encodings)
	}
	if cfg.HASH.Jobs <= 0 {
		return fmt.Errorf("%w: jobs must be positive, got %d", ErrInvalidConfig, cfg.HASH.Jobs)
	}
	if cfg.HASH.ContextCacheSize <= 0 {
		return fmt.Errorf("%w: context cache size must be positive, got %d",
			ErrInvalidConfig, cfg.HASH.ContextCacheSize)
	}
	switch cfg.LOGGING.Encoder {
	case ConsoleLogEncoder, JSONLogEncoder:
	default:
		return fmt.Errorf("%w: log encoder %q", ErrInvalidConfig, cfg.LOGGING.Encoder)
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(cfg.LOGGING.Level)); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SetConfigFile overrides the default config file path.
func (cfg *BaseConfig) SetConfigFile(file string) {
	cfg.ConfigFile = file
}

func validEncoding(name string) bool {
	for _, enc := range Encodings {
		if enc == name {
			return true
		}
	}
	return false
}
