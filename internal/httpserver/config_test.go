package httpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaultsAndExpand(t *testing.T) {
	t.Setenv("KITMAN_DB_PASSWD", "s3cr3t")

	dir := t.TempDir()
	file := filepath.Join(dir, "kitman.toml")

	content := `
listen = "0.0.0.0:9090"

[database]
name = "kitman"
user = "kitman"
passwd = "${KITMAN_DB_PASSWD}"
host = "127.0.0.1:3306"
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	cfg, err := NewConfig(file, true)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Listen)
	assert.Equal(t, "s3cr3t", cfg.DB.Passwd)
	assert.Equal(t, DefaultIdleTimeout, cfg.IdleTimeout.Duration)
	assert.NotNil(t, cfg.Cache)
}
