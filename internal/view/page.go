package view

import "github.com/InQaaaaGit/countries.git/internal/models"

// ThemeToggle состояние переключателя темы
type ThemeToggle struct {
	Dark  bool   `json:"dark"`
	Label string `json:"label"`
}

// NewThemeToggle: в тёмной теме кнопка предлагает светлую, и наоборот
func NewThemeToggle(theme models.Theme) ThemeToggle {
	if theme.IsDark() {
		return ThemeToggle{Dark: true, Label: LabelLightMode}
	}
	return ThemeToggle{Dark: false, Label: LabelDarkMode}
}

// Page модель целой страницы. Заполнено либо Home, либо Detail; Error
// содержит фиксированное сообщение об ошибке загрузки.
type Page struct {
	Title  string      `json:"title"`
	Theme  ThemeToggle `json:"theme"`
	Home   *HomeView   `json:"home,omitempty"`
	Detail *DetailView `json:"detail,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HasError сообщает, что страница показывает сообщение об ошибке
func (p Page) HasError() bool {
	return p.Error != ""
}
