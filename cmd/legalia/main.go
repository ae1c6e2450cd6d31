// Legalia - chat service for legal document workspaces
// Entry point: flag handling plus server lifecycle.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dmonterocr/legalia/internal/domain/chat"
	"github.com/dmonterocr/legalia/internal/infra/config"
	"github.com/dmonterocr/legalia/internal/infra/sqlite"
	"github.com/dmonterocr/legalia/internal/server"
	"github.com/dmonterocr/legalia/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("legalia", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	port := fs.Int("port", 8080, "HTTP listen port")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}

	if *showHelp {
		printHelp(out)
		return 0
	}

	if err := serve(*port); err != nil {
		fmt.Fprintf(out, "legalia: %v\n", err) //nolint:errcheck
		return 1
	}
	return 0
}

func serve(port int) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := config.Load()

	db, err := sqlite.NewDB(cfg.AuditDBPath)
	if err != nil {
		return fmt.Errorf("open audit database: %w", err)
	}
	if err := sqlite.MigrateUp(db); err != nil {
		db.Close() //nolint:errcheck
		return fmt.Errorf("apply migrations: %w", err)
	}

	tmpl := chat.DefaultTemplate()
	if cfg.PromptTemplatePath != "" {
		tmpl, err = chat.LoadTemplate(cfg.PromptTemplatePath)
		if err != nil {
			db.Close() //nolint:errcheck
			return fmt.Errorf("load prompt template: %w", err)
		}
		logger.Info("loaded prompt template", zap.String("path", cfg.PromptTemplatePath), zap.String("version", tmpl.Version))
	}

	srvCfg := server.DefaultConfig()
	srvCfg.Port = port
	srv := server.NewServer(db, cfg, tmpl, logger, srvCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func printHelp(out io.Writer) {
	helpText := `Legalia - chat service for legal document workspaces

Usage:
  legalia [options]

Options:
  --version    Show version information
  --help       Show this help message
  --port       HTTP listen port (default 8080)

Environment:
  LLM_PROVIDER           "openai" (default) or "ollama"
  OPENAI_API_KEY         API key for the openai provider
  DOCS_API_URL           Document service base URL
  JWT_SECRET             Optional local token validation secret
  AUDIT_DB_PATH          SQLite audit log path
  PROMPT_TEMPLATE_PATH   Optional YAML prompt template

Examples:
  legalia --version
  legalia --port 8080`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
