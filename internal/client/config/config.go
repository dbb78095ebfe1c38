package config

import (
	"os"
	"time"
)

// S3 selects the object storage exports may be pushed to. An empty Bucket
// disables the S3 sink.
type S3 struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// Config holds runtime settings for the admin console.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	// StorePath is the SQLite file the session token is kept in.
	StorePath string
	// StoreSecret seals the token at rest when set.
	StoreSecret string
	ExportDir   string
	PageSize    int
	HistoryFile string
	LogLevel    string
	LogFormat   string
	S3          S3
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.StorePath = "geeksadmin.db"
	c.ExportDir = "exports"
	c.PageSize = 10
	c.HistoryFile = ".geeksadmin_history"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, the optional config file,
// the environment and os.Args. It panics on malformed input.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	args := os.Args[1:]
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
