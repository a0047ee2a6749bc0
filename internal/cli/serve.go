package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"siyuanmcp/internal/config"
	"siyuanmcp/internal/gateway"
	"siyuanmcp/internal/mcp"
	"siyuanmcp/internal/siyuan"
	"siyuanmcp/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	RunE:  runServe,
}

var (
	serveBaseURL   string
	serveToken     string
	serveTimeoutMS int
	serveLogLevel  string
	serveAuditDB   string
)

func init() {
	serveCmd.Flags().StringVar(&serveBaseURL, "base-url", siyuan.DefaultBaseURL, "SiYuan kernel base URL")
	serveCmd.Flags().StringVar(&serveToken, "token", "", "SiYuan API token (also SIYUAN_TOKEN)")
	serveCmd.Flags().IntVar(&serveTimeoutMS, "timeout-ms", siyuan.DefaultTimeoutMS, "outbound request timeout in milliseconds")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "log level: debug|info|warn|error")
	serveCmd.Flags().StringVar(&serveAuditDB, "audit-db", "", "SQLite path for the invocation audit log (empty disables)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)
	log.Info("starting siyuanmcp",
		"base_url", cfg.BaseURL,
		"timeout_ms", cfg.TimeoutMS,
		"token_set", cfg.Token != "",
		"audit", cfg.AuditDB != "",
	)

	client := siyuan.NewClient(cfg.BaseURL, cfg.Token, time.Duration(cfg.TimeoutMS)*time.Millisecond)
	registry, err := gateway.NewRegistry()
	if err != nil {
		return err
	}
	dispatcher := gateway.NewDispatcher(registry, client, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var audit *store.AuditStore
	if cfg.AuditDB != "" {
		audit = store.NewAuditStore(cfg.AuditDB)
		if err := audit.Init(ctx); err != nil {
			return fmt.Errorf("open audit store %s: %w", cfg.AuditDB, err)
		}
		defer func() { _ = audit.Close() }()
	}

	server := mcp.NewServer(mcp.ServerOptions{
		Dispatcher: dispatcher,
		Audit:      audit,
		Log:        log,
		Version:    version,
	})
	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("siyuanmcp stopped")
	return nil
}

// loadConfig assembles config for the invoking command, treating only
// flags the user actually set as overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	overrides := &config.Overrides{}
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		overrides.BaseURL = &serveBaseURL
	}
	if flags.Changed("token") {
		overrides.Token = &serveToken
	}
	if flags.Changed("timeout-ms") {
		overrides.TimeoutMS = &serveTimeoutMS
	}
	if flags.Changed("log-level") {
		overrides.LogLevel = &serveLogLevel
	}
	if flags.Changed("audit-db") {
		overrides.AuditDB = &serveAuditDB
	}
	return config.Load(config.Options{
		ConfigPath: globalFlags.ConfigPath,
		Overrides:  overrides,
	})
}

// newLogger writes structured logs to stderr; stdout belongs to the MCP
// transport.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
