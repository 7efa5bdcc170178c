package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "waf.yaml")
	err := os.WriteFile(path, []byte(`
servicename: checkout
databases:
  logs:
    connection: "postgres://waf@localhost/logs"
    table: "public.request_log"
    textColumn: "raw_query"
    idColumn: "id"
`), 0o600)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "checkout", cfg.ServiceName)
	require.Contains(t, cfg.Databases, "logs")
	assert.Equal(t, "public.request_log", cfg.Databases["logs"].Table)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOpenRejectsUnknownScheme(t *testing.T) {
	_, err := Open("logs", DatabaseConfig{Connection: "mysql://localhost/db"})
	assert.Error(t, err)
}
