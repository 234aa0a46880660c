package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/InQaaaaGit/countries.git/internal/view"
	"go.uber.org/zap"
)

const (
	pageHome   = "home.html"
	pageDetail = "detail.html"
	pageError  = "error.html"
)

// pageTemplates набор шаблонов: каждая страница разбирается вместе с layout.html
type pageTemplates struct {
	byName map[string]*template.Template
}

func parseTemplates(fsys fs.FS) (*pageTemplates, error) {
	pages := &pageTemplates{byName: make(map[string]*template.Template)}
	for _, name := range []string{pageHome, pageDetail, pageError} {
		tmpl, err := template.ParseFS(fsys, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", name, err)
		}
		pages.byName[name] = tmpl
	}
	return pages, nil
}

// render выполняет шаблон в буфер, чтобы ошибка шаблона не оставила полстраницы
func (h *Handler) render(w http.ResponseWriter, status int, name string, page view.Page) {
	tmpl, ok := h.pages.byName[name]
	if !ok {
		h.logger.Error("Unknown template", zap.String("template", name))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		h.logger.Error("Error rendering template", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("Error writing response", zap.Error(err))
	}
}
