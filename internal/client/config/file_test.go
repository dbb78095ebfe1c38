package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeFile(t, "cfg.json", `{
		"api_base_url": "https://api.example.com",
		"request_timeout": "3s",
		"page_size": 5,
		"s3": {"bucket": "reports", "region": "eu-west-1", "base_endpoint": "http://minio:9000"}
	}`)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, []string{"-config", path})

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, S3{Bucket: "reports", Region: "eu-west-1", BaseEndpoint: "http://minio:9000"}, cfg.S3)
	// untouched keys keep their defaults
	assert.Equal(t, "geeksadmin.db", cfg.StorePath)
}

func TestParseFile_SecretIsEnvOnly(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"store_secret": "from-file"}`)

	cfg := &Config{}
	parseFile(cfg, []string{"-c", path})
	assert.Empty(t, cfg.StoreSecret)

	t.Setenv("ADMIN_STORE_SECRET", "from-env")
	parseFile(cfg, []string{"-c", path})
	assert.Equal(t, "from-env", cfg.StoreSecret)
}

func TestParseFile_EnvWithoutFile(t *testing.T) {
	t.Setenv("ADMIN_API_BASE_URL", "https://env.example.com")
	t.Setenv("ADMIN_REQUEST_TIMEOUT", "1m")
	t.Setenv("ADMIN_S3_BUCKET", "b")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, nil)

	assert.Equal(t, "https://env.example.com", cfg.APIBaseURL)
	assert.Equal(t, time.Minute, cfg.RequestTimeout)
	assert.Equal(t, "b", cfg.S3.Bucket)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestParseFile_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	assert.Panics(t, func() { parseFile(&Config{}, []string{"-c", missing}) })

	bad := writeFile(t, "bad.json", `{"page_size": "many"}`)
	assert.Panics(t, func() { parseFile(&Config{}, []string{"-c", bad}) })
}

func TestDuration(t *testing.T) {
	var out struct {
		A Duration `json:"a"`
		B Duration `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"250ms","b":2000000000}`), &out))
	assert.Equal(t, 250*time.Millisecond, time.Duration(out.A))
	assert.Equal(t, 2*time.Second, time.Duration(out.B))

	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("2m")))
	assert.Equal(t, 2*time.Minute, time.Duration(d))
	assert.Error(t, d.SetValue("soon"))
}
