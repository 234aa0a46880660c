package view

import (
	"sort"
	"strings"

	"github.com/InQaaaaGit/countries.git/internal/models"
)

// BorderButton ссылка на соседнюю страну
type BorderButton struct {
	Name      string `json:"name"`
	DetailURL string `json:"detail_url"`
}

// FavoriteButton состояние кнопки избранного
type FavoriteButton struct {
	Active bool   `json:"active"`
	Label  string `json:"label"`
}

// MapView параметры карты страны
type MapView struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Zoom        int     `json:"zoom"`
	Popup       string  `json:"popup"`
	TileURL     string  `json:"tile_url"`
	Attribution string  `json:"attribution"`
}

// MapConfig настройки карты из конфигурации
type MapConfig struct {
	Zoom        int
	TileURL     string
	Attribution string
}

// DefaultMapConfig масштаб 5 и тайлы OpenStreetMap
func DefaultMapConfig() MapConfig {
	return MapConfig{Zoom: DefaultMapZoom, TileURL: DefaultTileURL, Attribution: DefaultAttribution}
}

// DetailView модель страницы деталей
type DetailView struct {
	CommonName     string          `json:"common_name"`
	OfficialName   string          `json:"official_name"`
	FlagURL        string          `json:"flag_url"`
	FlagAlt        string          `json:"flag_alt"`
	Population     string          `json:"population"`
	Region         string          `json:"region"`
	Subregion      string          `json:"subregion"`
	Capital        string          `json:"capital"`
	TLD            string          `json:"tld"`
	Currencies     string          `json:"currencies"`
	Languages      string          `json:"languages"`
	Borders        []BorderButton  `json:"borders"`
	NoBorders      bool            `json:"no_borders"`
	BordersMessage string          `json:"borders_message,omitempty"`
	Favorite       *FavoriteButton `json:"favorite,omitempty"`
	Map            *MapView        `json:"map,omitempty"`
}

// NewFavoriteButton возвращает кнопку избранного для заданного состояния
func NewFavoriteButton(active bool) *FavoriteButton {
	if active {
		return &FavoriteButton{Active: true, Label: LabelRemoveFavorite}
	}
	return &FavoriteButton{Active: false, Label: LabelAddFavorite}
}

// BuildDetail строит модель страницы деталей. neighbours выровнен по country.Borders;
// nil означает, что соседа найти не удалось, и кнопка для него не создаётся.
func BuildDetail(country *models.Country, neighbours []*models.Country, isFavorite bool, f *Formatter, mapCfg MapConfig) DetailView {
	v := DetailView{
		CommonName:   country.Name.Common,
		OfficialName: orNA(country.Name.Official),
		FlagURL:      country.Flags.SVG,
		FlagAlt:      "Bandeira " + country.Name.Common,
		Population:   f.FormatPopulation(country.Population),
		Region:       orNA(country.Region),
		Subregion:    orNA(country.Subregion),
		Capital:      firstOrNA(country.Capital),
		TLD:          joinOrNA(country.TLD),
		Currencies:   joinOrNA(currencyNames(country.Currencies)),
		Languages:    joinOrNA(languageNames(country.Languages)),
		Borders:      []BorderButton{},
		Favorite:     NewFavoriteButton(isFavorite),
		Map:          buildMap(country, mapCfg),
	}

	if len(country.Borders) == 0 {
		v.NoBorders = true
		v.BordersMessage = MsgNoBorders
		return v
	}

	for _, n := range neighbours {
		if n == nil || n.Name.Common == "" {
			continue
		}
		v.Borders = append(v.Borders, BorderButton{Name: n.Name.Common, DetailURL: DetailURL(n.Name.Common)})
	}
	return v
}

func buildMap(country *models.Country, cfg MapConfig) *MapView {
	if len(country.LatLng) < 2 {
		return nil
	}
	return &MapView{
		Lat:         country.LatLng[0],
		Lng:         country.LatLng[1],
		Zoom:        cfg.Zoom,
		Popup:       country.Name.Common,
		TileURL:     cfg.TileURL,
		Attribution: cfg.Attribution,
	}
}

// currencyNames возвращает названия валют в порядке кодов
func currencyNames(currencies map[string]models.Currency) []string {
	codes := sortedKeys(currencies)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, currencies[code].Name)
	}
	return names
}

func languageNames(languages map[string]string) []string {
	codes := sortedKeys(languages)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, languages[code])
	}
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return NotAvailable
	}
	return strings.Join(values, ", ")
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
