// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		env    map[string]string
		assert func(t *testing.T, cfg Config)
	}{
		{
			name: "正常系: 設定ファイルなしはデフォルト値",
			assert: func(t *testing.T, cfg Config) {
				assert.Equal(t, DefaultDatabaseDriver, cfg.Database.Driver)
				assert.Equal(t, DefaultServerPort, cfg.Server.Port)
				assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
				assert.Equal(t, DefaultPageLimit, cfg.App.DefaultPageLimit)
				assert.Equal(t, DefaultMaxPageLimit, cfg.App.MaxPageLimit)
				assert.Equal(t, DefaultAllowedOrigins, cfg.CORS.AllowedOrigins)
				assert.False(t, cfg.Database.AutoMigrate)
			},
		},
		{
			name: "正常系: 設定ファイルの値",
			yaml: `
database:
  driver: sqlite
  url: file:test.db
  auto_migrate: true
server:
  port: ":9000"
  read_timeout: 3s
app:
  default_page_limit: 20
  max_page_limit: 50
`,
			assert: func(t *testing.T, cfg Config) {
				assert.Equal(t, "sqlite", cfg.Database.Driver)
				assert.Equal(t, "file:test.db", cfg.Database.URL)
				assert.True(t, cfg.Database.AutoMigrate)
				assert.Equal(t, ":9000", cfg.Server.Port)
				assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
				assert.Equal(t, 20, cfg.App.DefaultPageLimit)
				assert.Equal(t, 50, cfg.App.MaxPageLimit)
			},
		},
		{
			name: "正常系: 環境変数で上書き",
			yaml: "server:\n  port: \":9000\"\n",
			env: map[string]string{
				"APP_SERVER_PORT": ":9100",
				"DATABASE_URL":    "postgres://env",
				"APP_LOG_LEVEL":   "debug",
			},
			assert: func(t *testing.T, cfg Config) {
				assert.Equal(t, ":9100", cfg.Server.Port)
				assert.Equal(t, "postgres://env", cfg.Database.URL)
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name: "異常系: 不正なページ上限は補正される",
			yaml: "app:\n  default_page_limit: -5\n  max_page_limit: 10\n",
			assert: func(t *testing.T, cfg Config) {
				assert.Equal(t, DefaultPageLimit, cfg.App.DefaultPageLimit)
				assert.Equal(t, DefaultPageLimit, cfg.App.MaxPageLimit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.yaml != "" {
				dir = writeConfig(t, tt.yaml)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			require.NoError(t, LoadConfig(dir))
			tt.assert(t, Cfg)
		})
	}
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	dir := writeConfig(t, "server: [unclosed")

	assert.Error(t, LoadConfig(dir))
}
