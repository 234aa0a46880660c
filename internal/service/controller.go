// Package service содержит логику страниц приложения: контроллер главной страницы
// и страницы деталей, а также сервис пользовательских настроек.
package service

import (
	"context"
	"errors"

	"github.com/InQaaaaGit/countries.git/internal/models"
	"github.com/InQaaaaGit/countries.git/internal/restcountries"
	"github.com/InQaaaaGit/countries.git/internal/view"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNameRequired возвращается, если не передано имя страны
var ErrNameRequired = errors.New("country name is required")

// CountryClient определяет интерфейс источника данных о странах.
// Позволяет подменять клиента в тестах.
type CountryClient interface {
	FetchAllCountries(ctx context.Context) ([]models.Country, error)
	FetchCountriesByRegion(ctx context.Context, region string) ([]models.Country, error)
	FetchCountryByExactName(ctx context.Context, name string) (*models.Country, error)
	FetchCountryByCode(ctx context.Context, code string) *models.Country
}

// CountryController строит модели страниц. Ошибки слоя доступа к данным не выходят
// за пределы контроллера: они превращаются в фиксированные сообщения.
type CountryController struct {
	client    CountryClient
	prefs     *PreferenceService
	formatter *view.Formatter
	mapCfg    view.MapConfig
	logger    *zap.Logger
}

// NewCountryController создает контроллер страниц
func NewCountryController(client CountryClient, prefs *PreferenceService, formatter *view.Formatter, mapCfg view.MapConfig, logger *zap.Logger) *CountryController {
	return &CountryController{
		client:    client,
		prefs:     prefs,
		formatter: formatter,
		mapCfg:    mapCfg,
		logger:    logger,
	}
}

// Home строит главную страницу. Пустой регион загружает все страны;
// query скрывает карточки, имя которых его не содержит.
func (c *CountryController) Home(ctx context.Context, userID, region, query string) (view.Page, error) {
	page, err := c.newPage(ctx, userID, "Países")
	if err != nil {
		return page, err
	}

	var countries []models.Country
	if region == "" {
		countries, err = c.client.FetchAllCountries(ctx)
	} else {
		countries, err = c.client.FetchCountriesByRegion(ctx, region)
	}
	if err != nil {
		c.logger.Error("Error fetching countries", zap.String("region", region), zap.Error(err))
		if region == "" {
			page.Error = view.MsgLoadFailed
		} else {
			page.Error = view.MsgRegionFailed
		}
		// Фильтры остаются на странице, чтобы можно было повторить запрос
		countries = nil
	}

	home := view.BuildHome(countries, c.formatter)
	home.Region = region
	home.Query = query
	view.FilterCards(home.Cards, query)
	page.Home = &home
	return page, nil
}

// Detail строит страницу деталей страны. Для пустого имени возвращает ErrNameRequired.
// Если страна не найдена или запрос не удался, страница содержит только сообщение об ошибке.
func (c *CountryController) Detail(ctx context.Context, userID, name string) (view.Page, error) {
	if name == "" {
		return view.Page{}, ErrNameRequired
	}

	page, err := c.newPage(ctx, userID, name)
	if err != nil {
		return page, err
	}

	country, err := c.client.FetchCountryByExactName(ctx, name)
	if err != nil || country == nil {
		c.logger.Info("Country not found", zap.String("name", name), zap.Error(err))
		page.Error = view.MsgNotFound
		return page, nil
	}

	isFavorite, err := c.prefs.IsFavorite(ctx, userID, country.Name.Common)
	if err != nil {
		return page, err
	}

	neighbours := c.fetchNeighbours(ctx, country.Borders)
	detail := view.BuildDetail(country, neighbours, isFavorite, c.formatter, c.mapCfg)
	page.Title = country.Name.Common
	page.Detail = &detail
	return page, nil
}

// fetchNeighbours параллельно ищет соседей по кодам и дожидается всех ответов.
// Результат выровнен по codes, ненайденные соседи остаются nil.
func (c *CountryController) fetchNeighbours(ctx context.Context, codes []string) []*models.Country {
	neighbours := make([]*models.Country, len(codes))
	if len(codes) == 0 {
		return neighbours
	}

	// FetchCountryByCode не возвращает ошибок, поэтому группа нужна только как барьер
	var g errgroup.Group
	for i, code := range codes {
		g.Go(func() error {
			neighbours[i] = c.client.FetchCountryByCode(ctx, code)
			return nil
		})
	}
	_ = g.Wait()

	return neighbours
}

// ToggleFavorite переключает страну в избранном пользователя
func (c *CountryController) ToggleFavorite(ctx context.Context, userID, name string) (bool, error) {
	return c.prefs.ToggleFavorite(ctx, userID, name)
}

// ToggleTheme переключает тему пользователя
func (c *CountryController) ToggleTheme(ctx context.Context, userID string) (models.Theme, error) {
	return c.prefs.ToggleTheme(ctx, userID)
}

// Favorites возвращает избранное пользователя
func (c *CountryController) Favorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	return c.prefs.Favorites(ctx, userID)
}

// CheckConnection проверяет доступность хранилища настроек
func (c *CountryController) CheckConnection(ctx context.Context) error {
	return c.prefs.CheckConnection(ctx)
}

func (c *CountryController) newPage(ctx context.Context, userID, title string) (view.Page, error) {
	theme, err := c.prefs.Theme(ctx, userID)
	if err != nil {
		return view.Page{Title: title}, err
	}
	return view.Page{Title: title, Theme: view.NewThemeToggle(theme)}, nil
}

var _ CountryClient = (*restcountries.Client)(nil)
