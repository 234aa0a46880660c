package models

// Favorite запись избранного. Уникальность определяется только по имени.
type Favorite struct {
	Name string `json:"name"`
}

// Theme режим оформления страниц
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle возвращает противоположную тему
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark сообщает, включена ли тёмная тема
func (t Theme) IsDark() bool {
	return t == ThemeDark
}
