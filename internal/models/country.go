// Package models содержит структуры данных, которыми обмениваются слои приложения:
// записи REST Countries API, избранное пользователя и JWT-claims.
package models

// CountryName содержит общее и официальное название страны
type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Flags содержит ссылки на изображения флага
type Flags struct {
	SVG string `json:"svg"`
	PNG string `json:"png"`
	Alt string `json:"alt,omitempty"`
}

// Currency описывает валюту страны
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Country представляет запись страны в том виде, в котором её возвращает API.
// Опциональные поля могут отсутствовать: запрос /all ограничен набором полей.
type Country struct {
	Name       CountryName         `json:"name"`
	Flags      Flags               `json:"flags"`
	Population int64               `json:"population"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion,omitempty"`
	Capital    []string            `json:"capital,omitempty"`
	Currencies map[string]Currency `json:"currencies,omitempty"`
	Languages  map[string]string   `json:"languages,omitempty"`
	Borders    []string            `json:"borders,omitempty"`
	LatLng     []float64           `json:"latlng,omitempty"`
	TLD        []string            `json:"tld,omitempty"`
	CCA2       string              `json:"cca2,omitempty"`
	CCA3       string              `json:"cca3,omitempty"`
}
