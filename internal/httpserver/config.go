package httpserver

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultIdleTimeout  = 2 * time.Minute
)

// Duration decodes a TOML string like "30s" into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// DatabaseConfig is the MySQL DSN, split the way mysql.Config wants it.
type DatabaseConfig struct {
	Name   string `toml:"name"`
	User   string `toml:"user"`
	Passwd string `toml:"passwd"`
	Host   string `toml:"host"`
	Port   int    `toml:"port"`
}

// CacheConfig sizes the ristretto-backed catalog response cache.
type CacheConfig struct {
	NumCounters int64 `toml:"num_counters"`
	MaxCost     int64 `toml:"max_cost"`
	BufferItems int64 `toml:"buffer_items"`
}

// Config is the on-disk shape of a kitman-serve configuration file.
type Config struct {
	Listen       string         `toml:"listen"`
	IdleTimeout  Duration       `toml:"idle_timeout,omitempty"`
	ReadTimeout  Duration       `toml:"read_timeout,omitempty"`
	WriteTimeout Duration       `toml:"write_timeout,omitempty"`
	WebRoot      string         `toml:"web_root,omitempty"`
	DB           DatabaseConfig `toml:"database"`
	Cache        *CacheConfig   `toml:"cache,omitempty"`
}

// NewConfig decodes a Config from file, optionally expanding ${VAR}
// references (e.g. ${DB_PASSWORD}) the way a 12-factor deployment expects.
func NewConfig(file string, expandEnv bool) (*Config, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var r io.Reader = bytes.NewReader(raw)
	if expandEnv {
		r = bytes.NewReader([]byte(os.ExpandEnv(string(raw))))
	}

	cfg := &Config{
		Listen:       "127.0.0.1:8080",
		IdleTimeout:  Duration{DefaultIdleTimeout},
		ReadTimeout:  Duration{DefaultReadTimeout},
		WriteTimeout: Duration{DefaultWriteTimeout},
	}

	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{
			NumCounters: 1e7,
			MaxCost:     1 << 26,
			BufferItems: 64,
		}
	}

	return cfg, nil
}
