// Package config assembles the gateway's startup configuration with the
// precedence flags > env > config file > defaults.
package config

import "siyuanmcp/internal/siyuan"

type Config struct {
	// BaseURL of the SiYuan kernel; trailing slash is stripped by the
	// client at construction.
	BaseURL string
	// Token is sent as `Authorization: Token <token>` when non-empty.
	// It is only ever read from the environment or a CLI flag, never
	// from the config file.
	Token string
	// TimeoutMS bounds each outbound HTTP call.
	TimeoutMS int
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// AuditDB is the SQLite path for the invocation log; empty disables
	// auditing.
	AuditDB string
}

// fileConfig mirrors the TOML config file. All fields are optional;
// absent fields keep their defaults.
type fileConfig struct {
	BaseURL   *string `toml:"base_url"`
	TimeoutMS *int    `toml:"timeout_ms"`
	LogLevel  *string `toml:"log_level"`
	AuditDB   *string `toml:"audit_db"`
}

func Default() Config {
	return Config{
		BaseURL:   siyuan.DefaultBaseURL,
		Token:     "",
		TimeoutMS: siyuan.DefaultTimeoutMS,
		LogLevel:  "info",
		AuditDB:   "",
	}
}
