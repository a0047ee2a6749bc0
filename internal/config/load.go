package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

const DefaultConfigPath = "siyuanmcp.toml"

// Options for loading config.
type Options struct {
	ConfigPath   string
	SkipValidate bool
	// Overrides apply last (flags > env > file > defaults). Nil means no
	// CLI overrides.
	Overrides *Overrides
}

// Overrides holds CLI flag values that take precedence over env, file,
// and defaults. Only non-nil fields are applied.
type Overrides struct {
	BaseURL   *string
	Token     *string
	TimeoutMS *int
	LogLevel  *string
	AuditDB   *string
}

// Load builds config with precedence: defaults → config file → env vars
// → Overrides.
func Load(opts Options) (Config, error) {
	cfg := Default()

	// Optional local dotenv files for developer ergonomics. Explicit env
	// still wins: existing variables are never overwritten.
	if err := loadDotEnvFiles(".env.local", ".env"); err != nil {
		return Config{}, fmt.Errorf("load dotenv files: %w", err)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	if err := applyFile(&cfg, configPath); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)

	if opts.Overrides != nil {
		applyOverrides(&cfg, opts.Overrides)
	}

	if !opts.SkipValidate {
		if err := Validate(cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("malformed TOML in %s: %w", path, err)
	}
	if fc.BaseURL != nil {
		cfg.BaseURL = *fc.BaseURL
	}
	if fc.TimeoutMS != nil {
		cfg.TimeoutMS = *fc.TimeoutMS
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.AuditDB != nil {
		cfg.AuditDB = *fc.AuditDB
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SIYUAN_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SIYUAN_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("SIYUAN_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutMS = ms
		}
	}
	if v := os.Getenv("SIYUANMCP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SIYUANMCP_AUDIT_DB"); v != "" {
		cfg.AuditDB = v
	}
}

func applyOverrides(cfg *Config, o *Overrides) {
	if o.BaseURL != nil {
		cfg.BaseURL = *o.BaseURL
	}
	if o.Token != nil {
		cfg.Token = *o.Token
	}
	if o.TimeoutMS != nil {
		cfg.TimeoutMS = *o.TimeoutMS
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	if o.AuditDB != nil {
		cfg.AuditDB = *o.AuditDB
	}
}
