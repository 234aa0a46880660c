package view

// Фиксированные сообщения интерфейса
const (
	NotAvailable = "N/A"

	MsgLoadFailed   = "Falha ao carregar países. Verifique sua conexão."
	MsgRegionFailed = "Erro ao filtrar região."
	MsgNotFound     = "País não encontrado."
	MsgNoBorders    = "Não possui fronteiras terrestres."

	LabelAddFavorite    = "Adicionar Favorito"
	LabelRemoveFavorite = "Remover Favorito"
	LabelDarkMode       = "Modo Escuro"
	LabelLightMode      = "Modo Claro"

	DefaultMapZoom     = 5
	DefaultTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution = "&copy; OpenStreetMap contributors"
)

// Regions значения фильтра региона в порядке отображения
var Regions = []string{"Africa", "Americas", "Asia", "Europe", "Oceania"}
