// Package handler содержит HTTP-обработчики страниц и JSON API.
package handler

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/InQaaaaGit/countries.git/internal/buildinfo"
	"github.com/InQaaaaGit/countries.git/internal/middleware"
	"github.com/InQaaaaGit/countries.git/internal/models"
	"github.com/InQaaaaGit/countries.git/internal/view"
	"go.uber.org/zap"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

//go:embed templates/*.html static/*
var assets embed.FS

// CountryController определяет интерфейс контроллера страниц
type CountryController interface {
	Home(ctx context.Context, userID, region, query string) (view.Page, error)
	Detail(ctx context.Context, userID, name string) (view.Page, error)
	ToggleFavorite(ctx context.Context, userID, name string) (bool, error)
	ToggleTheme(ctx context.Context, userID string) (models.Theme, error)
	Favorites(ctx context.Context, userID string) ([]models.Favorite, error)
	CheckConnection(ctx context.Context) error
}

type Handler struct {
	controller CountryController
	pages      *pageTemplates
	build      *buildinfo.Info
	logger     *zap.Logger
}

// NewHandler создает обработчики и разбирает встроенные шаблоны
func NewHandler(controller CountryController, build *buildinfo.Info, logger *zap.Logger) (*Handler, error) {
	pages, err := parseTemplates(assets)
	if err != nil {
		return nil, err
	}
	if build == nil {
		build = buildinfo.New("", "", "")
	}
	return &Handler{
		controller: controller,
		pages:      pages,
		build:      build,
		logger:     logger,
	}, nil
}

// StaticHandler раздаёт встроенные JS и CSS
func (h *Handler) StaticHandler() http.Handler {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		// каталог встроен при сборке
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(static)))
}

// userID возвращает ID пользователя из контекста. Без WithAuth все запросы
// принадлежат одному анонимному пользователю.
func userID(r *http.Request) string {
	if id, ok := middleware.UserIDFromContext(r.Context()); ok {
		return id
	}
	return "anonymous"
}

// redirectBack возвращает путь страницы, с которой пришёл запрос.
// Берутся только путь и query, чтобы не уводить пользователя на чужой хост.
func redirectBack(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" {
		return "/"
	}
	back := url.URL{Path: ref.Path, RawQuery: ref.RawQuery}
	return back.String()
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Error writing JSON response", zap.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}
