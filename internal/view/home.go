// Package view превращает записи стран в модели представления. Пакет не делает
// ввода-вывода, поэтому результат можно проверять в тестах без HTTP.
package view

import (
	"net/url"
	"sort"
	"strings"

	"github.com/InQaaaaGit/countries.git/internal/models"
)

// Card карточка страны на главной странице
type Card struct {
	Name       string `json:"name"`
	FlagURL    string `json:"flag_url"`
	FlagAlt    string `json:"flag_alt"`
	Population string `json:"population"`
	Region     string `json:"region"`
	Capital    string `json:"capital"`
	DetailURL  string `json:"detail_url"`
	Hidden     bool   `json:"hidden,omitempty"`
}

// HomeView модель главной страницы
type HomeView struct {
	Cards   []Card   `json:"cards"`
	Region  string   `json:"region,omitempty"`
	Query   string   `json:"query,omitempty"`
	Regions []string `json:"-"`
}

// DetailURL строит ссылку на страницу деталей по общему имени страны
func DetailURL(name string) string {
	return "/details?" + url.Values{"name": {name}}.Encode()
}

// BuildHome сортирует страны по общему имени с учётом локали и строит карточки
func BuildHome(countries []models.Country, f *Formatter) HomeView {
	cards := make([]Card, 0, len(countries))
	for _, c := range countries {
		cards = append(cards, Card{
			Name:       c.Name.Common,
			FlagURL:    c.Flags.SVG,
			FlagAlt:    "Bandeira " + c.Name.Common,
			Population: f.FormatPopulation(c.Population),
			Region:     c.Region,
			Capital:    firstOrNA(c.Capital),
			DetailURL:  DetailURL(c.Name.Common),
		})
	}

	collator := f.Collator()
	sort.SliceStable(cards, func(i, j int) bool {
		return collator.CompareString(cards[i].Name, cards[j].Name) < 0
	})

	return HomeView{Cards: cards, Regions: Regions}
}

// FilterCards помечает скрытыми карточки, имя которых не содержит term (без учёта регистра).
// Пустой term показывает все карточки.
func FilterCards(cards []Card, term string) {
	needle := strings.ToLower(term)
	for i := range cards {
		cards[i].Hidden = !strings.Contains(strings.ToLower(cards[i].Name), needle)
	}
}

// VisibleCards возвращает только видимые карточки
func VisibleCards(cards []Card) []Card {
	visible := make([]Card, 0, len(cards))
	for _, c := range cards {
		if !c.Hidden {
			visible = append(visible, c)
		}
	}
	return visible
}

func firstOrNA(values []string) string {
	if len(values) == 0 || values[0] == "" {
		return NotAvailable
	}
	return values[0]
}
