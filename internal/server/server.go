// Package server запускает HTTP и HTTPS серверы и создает логгер приложения.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/InQaaaaGit/countries.git/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Таймауты сервера. Запросы к внешнему API идут внутри обработчиков,
// поэтому WriteTimeout должен покрывать поиск соседей страны.
const (
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 30 * time.Second
	IdleTimeout     = 120 * time.Second
	ShutdownTimeout = 10 * time.Second
)

// Starter интерфейс для запуска сервера
type Starter interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// HTTPServer представляет HTTP сервер с общей логикой запуска
type HTTPServer struct {
	server *http.Server
	config *config.Config
	logger *zap.Logger
}

// NewHTTPServer создает сервер с таймаутами по умолчанию
func NewHTTPServer(handler http.Handler, cfg *config.Config, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:         cfg.ServerAddress,
			Handler:      handler,
			ReadTimeout:  ReadTimeout,
			WriteTimeout: WriteTimeout,
			IdleTimeout:  IdleTimeout,
		},
		config: cfg,
		logger: logger,
	}
}

// Start слушает адрес из конфигурации и обслуживает запросы до Shutdown.
// После штатной остановки возвращает nil.
func (s *HTTPServer) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ln)
}

// Serve обслуживает запросы на готовом listener
func (s *HTTPServer) Serve(ln net.Listener) error {
	var err error
	if s.config.IsHTTPSEnabled() {
		s.logger.Info("Starting HTTPS server",
			zap.String("address", ln.Addr().String()),
			zap.String("cert", s.config.TLSCertFile),
			zap.String("key", s.config.TLSKeyFile))
		err = s.server.ServeTLS(ln, s.config.TLSCertFile, s.config.TLSKeyFile)
	} else {
		s.logger.Info("Starting HTTP server", zap.String("address", ln.Addr().String()))
		err = s.server.Serve(ln)
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown останавливает сервер, дожидаясь активных запросов
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.server.Shutdown(ctx)
}

// InitLogger создает production логгер с заданным уровнем.
// Уровень debug переключает логгер в development-режим.
func InitLogger(level string) (*zap.Logger, func(), error) {
	var (
		logger *zap.Logger
		err    error
	)

	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		lvl := zapcore.InfoLevel
		if level != "" {
			if lvl, err = zapcore.ParseLevel(level); err != nil {
				return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
			}
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		logger, err = cfg.Build()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing logger: %w", err)
	}

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}
	return logger, cleanup, nil
}
