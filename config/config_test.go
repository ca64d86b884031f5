package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-xofhash/engine"
)

func TestLoadConfig(t *testing.T) {
	vip := viper.New()
	err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), vip)
	require.ErrorContains(t, err, "failed to read config file")

	path := filepath.Join(t.TempDir(), "xofhash.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[main]
metrics = true

[hash]
engine = "luke"
length = 64
encoding = "base58btc"

[logging]
log-level = "debug"
`), 0o600))

	vip = viper.New()
	require.NoError(t, LoadConfig(path, vip))
	cfg := DefaultConfig()
	require.NoError(t, vip.Unmarshal(&cfg))

	want := DefaultConfig()
	want.CollectMetrics = true
	want.HASH.Engine = engine.LukeName
	want.HASH.Length = 64
	want.HASH.Encoding = Base58BTCEncoding
	want.LOGGING.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })

	require.NoError(t, LoadConfig("", viper.New()))
}

func TestValidate(t *testing.T) {
	def := DefaultConfig()
	require.NoError(t, def.Validate())

	for _, tc := range []struct {
		desc   string
		modify func(*Config)
	}{
		{"unknown engine", func(c *Config) { c.HASH.Engine = "sha256" }},
		{"negative length", func(c *Config) { c.HASH.Length = -1 }},
		{"unknown encoding", func(c *Config) { c.HASH.Encoding = "base36" }},
		{"zero jobs", func(c *Config) { c.HASH.Jobs = 0 }},
		{"zero cache", func(c *Config) { c.HASH.ContextCacheSize = 0 }},
		{"log encoder", func(c *Config) { c.LOGGING.Encoder = "xml" }},
		{"log level", func(c *Config) { c.LOGGING.Level = "loud" }},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
