// Package app собирает приложение: хранилище настроек, клиента REST Countries,
// контроллер страниц, HTTP-обработчики и маршруты.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/InQaaaaGit/countries.git/internal/buildinfo"
	"github.com/InQaaaaGit/countries.git/internal/config"
	"github.com/InQaaaaGit/countries.git/internal/handler"
	"github.com/InQaaaaGit/countries.git/internal/middleware"
	"github.com/InQaaaaGit/countries.git/internal/restcountries"
	"github.com/InQaaaaGit/countries.git/internal/server"
	"github.com/InQaaaaGit/countries.git/internal/service"
	"github.com/InQaaaaGit/countries.git/internal/storage"
	"github.com/InQaaaaGit/countries.git/internal/view"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App представляет основное приложение.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и хранилище настроек.
type App struct {
	config  *config.Config
	router  *chi.Mux
	logger  *zap.Logger
	handler *handler.Handler
	storage storage.PreferenceStorage
}

// NewApp создает приложение и все его зависимости.
// Хранилище выбирается по конфигурации: PostgreSQL, SQLite, файл или память.
func NewApp(cfg *config.Config, logger *zap.Logger, build *buildinfo.Info) (*App, error) {
	formatter, err := view.NewFormatter(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("error creating formatter: %w", err)
	}

	prefStorage, err := storage.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating storage: %w", err)
	}

	client := restcountries.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)
	prefs := service.NewPreferenceService(prefStorage, logger)
	controller := service.NewCountryController(client, prefs, formatter, mapConfig(cfg), logger)

	h, err := handler.NewHandler(controller, build, logger)
	if err != nil {
		_ = prefStorage.Close()
		return nil, fmt.Errorf("error creating handler: %w", err)
	}

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: h,
		storage: prefStorage,
	}
	a.setupRoutes()
	return a, nil
}

// Router возвращает настроенный роутер
func (a *App) Router() http.Handler {
	return a.router
}

// Run запускает HTTP или HTTPS сервер и блокируется до отмены ctx.
// После отмены сервер дожидается активных запросов и закрывает хранилище.
func (a *App) Run(ctx context.Context) error {
	srv := server.NewHTTPServer(a.router, a.config, a.logger)
	return a.serve(ctx, srv)
}

func (a *App) serve(ctx context.Context, srv server.Starter) error {
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	select {
	case err := <-serverErrors:
		closeErr := a.Close()
		if err == nil {
			return closeErr
		}
		return errors.Join(fmt.Errorf("server error: %w", err), closeErr)
	case <-ctx.Done():
		a.logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()

	shutdownErr := srv.Shutdown(shutdownCtx)
	if err := <-serverErrors; err != nil && shutdownErr == nil {
		shutdownErr = err
	}
	if err := a.Close(); err != nil {
		return errors.Join(shutdownErr, err)
	}
	if shutdownErr != nil {
		return fmt.Errorf("server shutdown failed: %w", shutdownErr)
	}

	a.logger.Info("Server gracefully stopped")
	return nil
}

// Close закрывает хранилище настроек
func (a *App) Close() error {
	if err := a.storage.Close(); err != nil {
		return fmt.Errorf("error closing storage: %w", err)
	}
	return nil
}

// setupRoutes регистрирует маршруты и глобальные middleware
// (логирование, сжатие, идентификация пользователя).
func (a *App) setupRoutes() {
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(middleware.GzipMiddleware)

	// Статика и служебные маршруты не требуют куки пользователя
	a.router.Handle("/static/*", a.handler.StaticHandler())
	a.router.Get("/ping", a.handler.HandlePing)
	a.router.Get("/version", a.handler.HandleVersion)

	a.router.Group(func(r chi.Router) {
		r.Use(middleware.WithAuth(a.config.SecretKey, a.logger))

		r.Get("/", a.handler.HandleHome)
		r.Get("/details", a.handler.HandleDetail)
		r.Post("/favorites", a.handler.HandleToggleFavorite)
		r.Post("/theme", a.handler.HandleToggleTheme)

		r.Get("/api/countries", a.handler.HandleAPICountries)
		r.Get("/api/countries/{name}", a.handler.HandleAPICountry)
		r.Get("/api/user/favorites", a.handler.HandleUserFavorites)
	})

	// Профилирование только по явному флагу
	if a.config.EnablePprof {
		a.router.Mount("/debug", chimiddleware.Profiler())
	}
}

func mapConfig(cfg *config.Config) view.MapConfig {
	mc := view.DefaultMapConfig()
	mc.Zoom = cfg.MapZoom
	if cfg.TileURL != "" {
		mc.TileURL = cfg.TileURL
	}
	return mc
}
