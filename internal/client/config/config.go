package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - RemoteBaseURL: base URL of the backend API. Empty means local-only
//     mode: no remote calls are attempted and authentication is served
//     entirely from the local store.
//   - DatabasePath: sqlite file holding sessions, credentials and saved items.
//   - RequestTimeout: upper bound on each remote call; expiry is treated as
//     the backend being unreachable.
type Config struct {
	RemoteBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.RemoteBaseURL = ""
	c.DatabasePath = "clio.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
