// Command countries запускает веб-приложение для поиска стран.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/InQaaaaGit/countries.git/internal/app"
	"github.com/InQaaaaGit/countries.git/internal/buildinfo"
	"github.com/InQaaaaGit/countries.git/internal/config"
	"github.com/InQaaaaGit/countries.git/internal/server"
	"go.uber.org/zap"
)

// Задаются при сборке:
//
//	go build -ldflags "-X main.buildVersion=v1.0.0 -X 'main.buildDate=$(date)' -X main.buildCommit=$(git rev-parse HEAD)"
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("Ошибка запуска приложения: %v", err)
	}
}

// run ждёт SIGINT или SIGTERM и затем штатно останавливает сервер
func run(args []string, out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, args, out)
}

func serve(ctx context.Context, args []string, out io.Writer) error {
	info := buildinfo.New(buildVersion, buildDate, buildCommit)
	if err := info.Fprint(out); err != nil {
		return fmt.Errorf("error printing build info: %w", err)
	}

	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger, cleanup, err := server.InitLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("Starting countries service", info.Fields()...)
	logger.Info("Configuration loaded",
		zap.String("address", cfg.ServerAddress),
		zap.String("api", cfg.APIBaseURL),
		zap.String("locale", cfg.Locale),
		zap.Bool("https", cfg.IsHTTPSEnabled()))

	application, err := app.NewApp(cfg, logger, info)
	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}
	return application.Run(ctx)
}
