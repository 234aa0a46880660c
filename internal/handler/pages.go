package handler

import (
	"errors"
	"net/http"

	"github.com/InQaaaaGit/countries.git/internal/service"
	"github.com/InQaaaaGit/countries.git/internal/view"
	"go.uber.org/zap"
)

// HandleHome отображает список стран. Параметры: region и q.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	query := r.URL.Query().Get("q")

	page, err := h.controller.Home(r.Context(), userID(r), region, query)
	if err != nil {
		h.logger.Error("Error building home page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if page.HasError() {
		status = http.StatusBadGateway
	}
	h.render(w, status, pageHome, page)
}

// HandleDetail отображает страницу страны. Без имени перенаправляет на главную.
func (h *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	page, err := h.controller.Detail(r.Context(), userID(r), name)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		h.logger.Error("Error building detail page", zap.String("name", name), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if page.Detail == nil {
		h.render(w, http.StatusNotFound, pageError, page)
		return
	}
	h.render(w, http.StatusOK, pageDetail, page)
}

// HandleToggleFavorite переключает страну в избранном и возвращает на её страницу
func (h *Handler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")

	if _, err := h.controller.ToggleFavorite(r.Context(), userID(r), name); err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			http.Error(w, "country name is required", http.StatusBadRequest)
			return
		}
		h.logger.Error("Error toggling favorite", zap.String("name", name), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, view.DetailURL(name), http.StatusSeeOther)
}

// HandleToggleTheme переключает тему и возвращает на предыдущую страницу
func (h *Handler) HandleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if _, err := h.controller.ToggleTheme(r.Context(), userID(r)); err != nil {
		h.logger.Error("Error toggling theme", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, redirectBack(r), http.StatusSeeOther)
}
