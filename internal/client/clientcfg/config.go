package clientcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dealswap/internal/client/api"

	"github.com/BurntSushi/toml"
)

// PasswordEnv overrides Auth.Password so it can stay out of the file.
const PasswordEnv = "DEALCLIENT_PASSWORD"

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Auth     AuthConfig     `toml:"auth"`
	Retry    RetryConfig    `toml:"retry"`
	Cache    CacheConfig    `toml:"cache"`
	Log      LogConfig      `toml:"log"`
	Calendar CalendarConfig `toml:"calendar"`
}

type ServerConfig struct {
	BaseURL string        `toml:"base_url"`
	Timeout time.Duration `toml:"timeout"`
}

type AuthConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
	// Signup creates the account when login is rejected and the name is free.
	Signup bool `toml:"signup"`
}

type RetryConfig struct {
	Count   int           `toml:"count"`
	Wait    time.Duration `toml:"wait"`
	MaxWait time.Duration `toml:"max_wait"`
}

type CacheConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

type CalendarConfig struct {
	TimeZone string `toml:"timezone"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{BaseURL: "http://localhost:8080", Timeout: 10 * time.Second},
		Retry:  RetryConfig{Count: 3, Wait: 200 * time.Millisecond, MaxWait: 2 * time.Second},
		Cache:  CacheConfig{Path: "dealclient.db"},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Calendar: CalendarConfig{TimeZone: "Local"},
	}
}

// Load decodes path over Default. Relative cache and log paths are resolved
// against the directory holding the config file.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config file %s has unknown key %s", path, undecoded[0])
	}

	if pw := os.Getenv(PasswordEnv); pw != "" {
		cfg.Auth.Password = pw
	}

	base := filepath.Dir(path)
	cfg.Cache.Path = resolve(base, cfg.Cache.Path)
	if cfg.Log.File != "" {
		cfg.Log.File = resolve(base, cfg.Log.File)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.BaseURL) == "" {
		return fmt.Errorf("server.base_url is required")
	}
	if strings.TrimSpace(c.Auth.Username) == "" {
		return fmt.Errorf("auth.username is required")
	}
	if c.Retry.Count < 0 {
		return fmt.Errorf("retry.count must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Calendar.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar.timezone %q: %w", c.Calendar.TimeZone, err)
	}
	return loc, nil
}

func (c Config) API() api.Config {
	return api.Config{
		BaseURL:      strings.TrimRight(c.Server.BaseURL, "/"),
		Timeout:      c.Server.Timeout,
		RetryCount:   c.Retry.Count,
		RetryWait:    c.Retry.Wait,
		RetryMaxWait: c.Retry.MaxWait,
	}
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) || p == ":memory:" {
		return p
	}
	return filepath.Join(base, p)
}
