package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// HandlePing проверяет соединение с хранилищем настроек
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.CheckConnection(r.Context()); err != nil {
		h.logger.Error("Ошибка подключения к хранилищу", zap.Error(err))
		http.Error(w, "Storage connection error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
