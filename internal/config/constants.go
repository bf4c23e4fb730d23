// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "prayer-journal"
	AppVersion = "0.4.0"
)

// デフォルト設定値
const (
	DefaultDatabaseDriver  = "postgres"
	DefaultServerPort      = ":8000"
	DefaultLogLevel        = "info"
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultPageLimit       = 100
	DefaultMaxPageLimit    = 500
)

// フロントエンド開発サーバー (Angular / React)
var DefaultAllowedOrigins = []string{"http://localhost:4200", "http://localhost:3000"}
