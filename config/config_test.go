package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "storefront.yml")
	data := `
system:
  workdir: /tmp/storefront
web:
  host: 127.0.0.1
  port: 9090
catalog:
  source: remote
  remote_url: https://dummyjson.com/products
currency:
  code: NPR
  rate: 120
`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o644))

	cfg := LoadConfig(file)
	assert.Equal(t, "/tmp/storefront", cfg.System.Workdir)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "remote", cfg.Catalog.Source)
	assert.Equal(t, "https://dummyjson.com/products", cfg.Catalog.RemoteURL)
	assert.InDelta(t, 120, cfg.Currency.Rate, 1e-9)
	// unset values pick up the zero-value guards
	assert.Equal(t, 1, cfg.Catalog.MinRelevance)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "storefront.yml")
	require.NoError(t, os.WriteFile(file, []byte("currency:\n  rate: 120\n"), 0o644))

	t.Setenv("STOREFRONT_CURRENCY_RATE", "150")
	t.Setenv("STOREFRONT_WEB_PORT", "8088")

	cfg := LoadConfig(file)
	assert.InDelta(t, 150, cfg.Currency.Rate, 1e-9)
	assert.Equal(t, 8088, cfg.Web.Port)
}

func TestLoadConfigRateGuard(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "storefront.yml")
	require.NoError(t, os.WriteFile(file, []byte("currency:\n  rate: -1\n"), 0o644))

	cfg := LoadConfig(file)
	assert.InDelta(t, 133, cfg.Currency.Rate, 1e-9)
}

func TestConfigDirs(t *testing.T) {
	cfg := &AppConfig{System: SysConfig{Workdir: "/var/storefront"}}
	assert.Equal(t, filepath.Join("/var/storefront", "data"), cfg.GetDataDir())
	assert.Equal(t, filepath.Join("/var/storefront", "logs"), cfg.GetLogDir())
}
