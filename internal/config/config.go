// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Driver      string `mapstructure:"driver"` // "postgres" or "sqlite"
		URL         string `mapstructure:"url"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"database"`
	Server struct {
		Port            string        `mapstructure:"port"`
		ReadTimeout     time.Duration `mapstructure:"read_timeout"`
		WriteTimeout    time.Duration `mapstructure:"write_timeout"`
		IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"` // 空ならファイル出力なし
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	App struct {
		DefaultPageLimit int `mapstructure:"default_page_limit"`
		MaxPageLimit     int `mapstructure:"max_page_limit"`
	} `mapstructure:"app"`
}

var Cfg Config

// LoadConfig は path 配下の config.yaml と環境変数から Cfg を構築します。
// 設定ファイルが無い場合はデフォルト値と環境変数だけで起動できます。
func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// APP_SERVER_PORT のように接頭辞付きの環境変数で上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- 不正値の補正 ---
	if cfg.App.DefaultPageLimit <= 0 {
		log.Printf("App default page limit not set or invalid, using default '%d'", DefaultPageLimit)
		cfg.App.DefaultPageLimit = DefaultPageLimit
	}
	if cfg.App.MaxPageLimit < cfg.App.DefaultPageLimit {
		log.Printf("App max page limit is smaller than default page limit, using '%d'", cfg.App.DefaultPageLimit)
		cfg.App.MaxPageLimit = cfg.App.DefaultPageLimit
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.idle_timeout", DefaultIdleTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("cors.allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Content-Type", "X-Request-Id"})
	v.SetDefault("cors.exposed_headers", []string{"X-Request-Id"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("app.default_page_limit", DefaultPageLimit)
	v.SetDefault("app.max_page_limit", DefaultMaxPageLimit)
}
