package handler

import (
	"net/http"
	"net/url"

	"github.com/InQaaaaGit/countries.git/internal/view"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleAPICountries возвращает видимые карточки стран в JSON
func (h *Handler) HandleAPICountries(w http.ResponseWriter, r *http.Request) {
	page, err := h.controller.Home(r.Context(), userID(r), r.URL.Query().Get("region"), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("Error loading countries", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	if page.HasError() || page.Home == nil {
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: page.Error})
		return
	}

	h.writeJSON(w, http.StatusOK, view.VisibleCards(page.Home.Cards))
}

// HandleAPICountry возвращает модель страницы деталей в JSON
func (h *Handler) HandleAPICountry(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid country name"})
		return
	}

	page, err := h.controller.Detail(r.Context(), userID(r), name)
	if err != nil {
		h.logger.Error("Error loading country", zap.String("name", name), zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	if page.Detail == nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: page.Error})
		return
	}

	h.writeJSON(w, http.StatusOK, page.Detail)
}

// HandleUserFavorites возвращает избранное пользователя; пустой список отдаёт 204
func (h *Handler) HandleUserFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.controller.Favorites(r.Context(), userID(r))
	if err != nil {
		h.logger.Error("Error loading favorites", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	if len(favorites) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, http.StatusOK, favorites)
}

// HandleVersion возвращает информацию о сборке
func (h *Handler) HandleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.build)
}

// pathParam возвращает декодированный параметр маршрута.
// chi сопоставляет по RawPath, если он заполнен, и тогда сегмент остаётся экранированным.
func pathParam(r *http.Request, key string) (string, error) {
	param := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return param, nil
	}
	return url.PathUnescape(param)
}
