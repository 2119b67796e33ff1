// Package config loads the process-wide configuration.
// The Config struct is built once at startup and passed by reference into
// every component that needs it; there are no package-level globals.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	Name        string `mapstructure:"name"`
	SSLMode     string `mapstructure:"ssl_mode"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	TTLMinutes int    `mapstructure:"ttl_minutes"`
}

// HashConfig holds the argon2id parameters. The defaults follow the
// current OWASP recommendation (64 MiB, t=1, p=4).
type HashConfig struct {
	Time       uint32 `mapstructure:"time"`
	MemoryKiB  uint32 `mapstructure:"memory_kib"`
	Threads    uint8  `mapstructure:"threads"`
	SaltLength uint32 `mapstructure:"salt_length"`
	KeyLength  uint32 `mapstructure:"key_length"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Hash     HashConfig     `mapstructure:"hash"`
}

// Load reads configuration from the given file (e.g. "config.yaml").
// Environment variables prefixed with BLOG_ override file values, so the
// signing secret can be supplied as BLOG_JWT_SECRET without touching the
// file. A missing config file is not an error; defaults plus environment
// are enough to boot.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "blog")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "blog")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.auto_migrate", true)
	// An explicit default makes the key visible to AutomaticEnv, so
	// BLOG_JWT_SECRET works without a config file.
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.ttl_minutes", 30)
	v.SetDefault("hash.time", 1)
	v.SetDefault("hash.memory_kib", 64*1024)
	v.SetDefault("hash.threads", 4)
	v.SetDefault("hash.salt_length", 16)
	v.SetDefault("hash.key_length", 32)

	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			// The file exists but could not be parsed.
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// DSN renders the gorm/postgres connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}
