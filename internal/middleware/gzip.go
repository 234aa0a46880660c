package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriters = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// GzipMiddleware сжимает ответы для клиентов, поддерживающих gzip,
// и распаковывает тела запросов с Content-Encoding: gzip
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			if r.Body == nil || r.Body == http.NoBody {
				http.Error(w, "Empty request body", http.StatusBadRequest)
				return
			}

			gz, err := gzip.NewReader(r.Body)
			if err != nil {
				http.Error(w, "Invalid gzip body", http.StatusBadRequest)
				return
			}
			defer gz.Close()
			r.Body = gz
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz := gzipWriters.Get().(*gzip.Writer)
		defer gzipWriters.Put(gz)

		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipResponseWriter{ResponseWriter: w, gz: gz}
		defer gw.finish()
		next.ServeHTTP(gw, r)
	})
}

// gzipResponseWriter откладывает решение о сжатии до первой записи тела:
// ответы без тела и ответы, уже закодированные обработчиком, уходят как есть
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	status      int
	wroteHeader bool
	compress    bool
}

// WriteHeader запоминает статус; 1xx отправляются сразу
func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader || w.status != 0 {
		return
	}
	if statusCode >= 100 && statusCode < 200 {
		w.ResponseWriter.WriteHeader(statusCode)
		return
	}
	w.status = statusCode
}

// Write записывает данные в сжатый поток, если ответ сжимается
func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.start()
	}
	if w.compress {
		return w.gz.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *gzipResponseWriter) start() {
	w.wroteHeader = true
	if w.status == 0 {
		w.status = http.StatusOK
	}

	h := w.ResponseWriter.Header()
	if bodyAllowed(w.status) && h.Get("Content-Encoding") == "" {
		w.compress = true
		w.gz.Reset(w.ResponseWriter)
		h.Set("Content-Encoding", "gzip")
		// Длина сжатого тела другая
		h.Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(w.status)
}

// finish отправляет отложенный статус ответа без тела и закрывает gzip-поток
func (w *gzipResponseWriter) finish() {
	if !w.wroteHeader {
		if w.status != 0 {
			w.wroteHeader = true
			w.ResponseWriter.WriteHeader(w.status)
		}
		return
	}
	if w.compress {
		// Ошибку закрытия уже некуда вернуть: заголовки отправлены
		_ = w.gz.Close()
	}
}

func bodyAllowed(status int) bool {
	return status != http.StatusNoContent && status != http.StatusNotModified
}
