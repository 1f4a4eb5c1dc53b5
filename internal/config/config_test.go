package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbook/internal/config"
	"gstbook/internal/hsn"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 10, cfg.HSN.SearchLimit)
	assert.Equal(t, 50, cfg.HSN.MaxSearchLimit)
	assert.Equal(t, "INV", cfg.Invoice.NumberPrefix)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GSTBOOK_DB_HOST", "db.internal")
	t.Setenv("GSTBOOK_DB_PORT", "6543")
	t.Setenv("GSTBOOK_CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("GSTBOOK_HSN_TUNING_FILE", "/etc/gstbook/hsn.yaml")
	t.Setenv("GSTBOOK_INVOICE_NUMBER_PREFIX", "ACME")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "/etc/gstbook/hsn.yaml", cfg.HSN.TuningFile)
	assert.Equal(t, "ACME", cfg.Invoice.NumberPrefix)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)

	t.Setenv("GSTBOOK_SERVER_PORT", ":7000")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
}

func TestLoad_RejectsBadSearchLimits(t *testing.T) {
	t.Setenv("GSTBOOK_HSN_SEARCH_LIMIT", "60")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{Host: "h", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", d.DSN())
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadHSNWeights_EmptyPath(t *testing.T) {
	w, err := config.LoadHSNWeights("")

	require.NoError(t, err)
	assert.Equal(t, hsn.DefaultWeights(), w)
}

func TestLoadHSNWeights_PartialOverride(t *testing.T) {
	path := writeFile(t, "hsn.yaml", "code_prefix: 300\nfuzzy_low_threshold: 0.75\nmax_results: 5\n")

	w, err := config.LoadHSNWeights(path)
	require.NoError(t, err)

	assert.Equal(t, 300, w.CodePrefix)
	assert.InDelta(t, 0.75, w.FuzzyLowThreshold, 1e-9)
	assert.Equal(t, 5, w.MaxResults)
	assert.Equal(t, 250, w.ExactDescription)
	assert.Equal(t, 50, w.Goods)
}

func TestLoadHSNWeights_JSON(t *testing.T) {
	path := writeFile(t, "hsn.json", `{"goods": 40, "service_penalty": 30}`)

	w, err := config.LoadHSNWeights(path)
	require.NoError(t, err)

	assert.Equal(t, 40, w.Goods)
	assert.Equal(t, 30, w.ServicePenalty)
}

func TestLoadHSNWeights_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero divisor", "confidence_divisor: 0\n"},
		{"zero results", "max_results: 0\n"},
		{"thresholds reversed", "fuzzy_high_threshold: 0.7\nfuzzy_low_threshold: 0.8\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadHSNWeights(writeFile(t, "hsn.yaml", tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadHSNWeights_MissingFile(t *testing.T) {
	_, err := config.LoadHSNWeights(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("GSTBOOK_INVOICE_NUMBER_PREFIX=DOTENV\nGSTBOOK_DB_NAME=from_file\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("GSTBOOK_DB_NAME", "from_env")
	t.Cleanup(func() { _ = os.Unsetenv("GSTBOOK_INVOICE_NUMBER_PREFIX") })

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "DOTENV", cfg.Invoice.NumberPrefix)
	assert.Equal(t, "from_env", cfg.DB.Name)
}
