package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.APIBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 10, c.PageSize)
	assert.Equal(t, "exports", c.ExportDir)
	assert.Empty(t, c.StoreSecret)
	assert.Empty(t, c.S3.Bucket)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeFile(t, "cfg.yaml", `
api_base_url: https://file.example.com
page_size: 25
export_dir: from-file
`)
	t.Setenv("ADMIN_EXPORT_DIR", "from-env")
	t.Setenv("ADMIN_STORE_SECRET", "s3cret")

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"geeksadmin", "-c", path, "-p", "50", "-unknown", "x"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "https://file.example.com", cfg.APIBaseURL)
	assert.Equal(t, "from-env", cfg.ExportDir)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, "s3cret", cfg.StoreSecret)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
