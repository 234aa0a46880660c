package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// LoggerMiddleware создает middleware для логирования запросов и ответов
func LoggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Обертка ResponseWriter отслеживает статус и размер ответа
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := []zap.Field{
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.String("method", r.Method),
				zap.Duration("latency", time.Since(start)),
				zap.Int("status", status),
				zap.Int("size", ww.BytesWritten()),
			}
			if status >= http.StatusInternalServerError {
				logger.Warn("Request failed", fields...)
				return
			}
			logger.Info("Request processed", fields...)
		})
	}
}
