package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/geeksadmin/internal/flagx"
	"github.com/ilyakaznacheev/cleanenv"
)

// Duration is a time.Duration that reads "15s"-style strings as well as
// integer nanoseconds from files and the environment.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return d.SetValue(s)
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	*d = Duration(n)
	return nil
}

// UnmarshalText serves YAML strings.
func (d *Duration) UnmarshalText(text []byte) error {
	return d.SetValue(string(text))
}

// SetValue implements cleanenv.Setter.
func (d *Duration) SetValue(s string) error {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(n)
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

type fileS3 struct {
	Bucket       string `json:"bucket"        yaml:"bucket"        env:"ADMIN_S3_BUCKET"`
	Region       string `json:"region"        yaml:"region"        env:"ADMIN_S3_REGION"`
	BaseEndpoint string `json:"base_endpoint" yaml:"base_endpoint" env:"ADMIN_S3_ENDPOINT"`
	AccessKey    string `json:"access_key"    yaml:"access_key"    env:"ADMIN_S3_ACCESS_KEY"`
	SecretKey    string `json:"secret_key"    yaml:"secret_key"    env:"ADMIN_S3_SECRET_KEY"`
}

// fileConfig is the DTO the config file and the environment are read
// into. It is prefilled from the current Config so absent keys keep
// their values.
type fileConfig struct {
	APIBaseURL     string   `json:"api_base_url"    yaml:"api_base_url"    env:"ADMIN_API_BASE_URL"`
	RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" env:"ADMIN_REQUEST_TIMEOUT"`
	StorePath      string   `json:"store_path"      yaml:"store_path"      env:"ADMIN_STORE_PATH"`
	StoreSecret    string   `json:"-"               yaml:"-"               env:"ADMIN_STORE_SECRET"`
	ExportDir      string   `json:"export_dir"      yaml:"export_dir"      env:"ADMIN_EXPORT_DIR"`
	PageSize       int      `json:"page_size"       yaml:"page_size"       env:"ADMIN_PAGE_SIZE"`
	HistoryFile    string   `json:"history_file"    yaml:"history_file"    env:"ADMIN_HISTORY_FILE"`
	LogLevel       string   `json:"log_level"       yaml:"log_level"       env:"ADMIN_LOG_LEVEL"`
	LogFormat      string   `json:"log_format"      yaml:"log_format"      env:"ADMIN_LOG_FORMAT"`
	S3             fileS3   `json:"s3"              yaml:"s3"`
}

func newFileConfig(c *Config) fileConfig {
	return fileConfig{
		APIBaseURL:     c.APIBaseURL,
		RequestTimeout: Duration(c.RequestTimeout),
		StorePath:      c.StorePath,
		StoreSecret:    c.StoreSecret,
		ExportDir:      c.ExportDir,
		PageSize:       c.PageSize,
		HistoryFile:    c.HistoryFile,
		LogLevel:       c.LogLevel,
		LogFormat:      c.LogFormat,
		S3: fileS3{
			Bucket:       c.S3.Bucket,
			Region:       c.S3.Region,
			BaseEndpoint: c.S3.BaseEndpoint,
			AccessKey:    c.S3.AccessKey,
			SecretKey:    c.S3.SecretKey,
		},
	}
}

func (fc fileConfig) apply(c *Config) {
	c.APIBaseURL = fc.APIBaseURL
	c.RequestTimeout = time.Duration(fc.RequestTimeout)
	c.StorePath = fc.StorePath
	c.StoreSecret = fc.StoreSecret
	c.ExportDir = fc.ExportDir
	c.PageSize = fc.PageSize
	c.HistoryFile = fc.HistoryFile
	c.LogLevel = fc.LogLevel
	c.LogFormat = fc.LogFormat
	c.S3 = S3(fc.S3)
}

// parseFile overlays cfg with the config file named by -c/-config, if
// any, and then with ADMIN_* environment variables. Read or decode
// errors panic.
func parseFile(cfg *Config, args []string) {
	fc := newFileConfig(cfg)

	if path := flagx.ConfigPath(args); path != "" {
		if err := cleanenv.ReadConfig(path, &fc); err != nil {
			panic(fmt.Errorf("config file %s: %w", path, err))
		}
	} else if err := cleanenv.ReadEnv(&fc); err != nil {
		panic(fmt.Errorf("config env: %w", err))
	}

	fc.apply(cfg)
}
