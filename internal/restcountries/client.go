// Package restcountries реализует слой доступа к данным REST Countries API v3.1.
// Клиент ничего не кэширует: каждый вызов выполняет новый HTTP запрос.
package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/InQaaaaGit/countries.git/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL базовый адрес публичного API
	DefaultBaseURL = "https://restcountries.com/v3.1"
	// RegionAll значение фильтра региона, означающее все страны
	RegionAll = "all"

	listFields = "name,flags,population,region,capital"
)

// Client взаимодействует с REST Countries API.
type Client struct {
	client  *http.Client
	BaseURL string
	logger  *zap.Logger
}

// NewClient создает клиента. timeout == 0 означает отсутствие таймаута.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		client:  &http.Client{Timeout: timeout},
		BaseURL: baseURL,
		logger:  logger,
	}
}

// WithHTTPClient подменяет http.Client (используется в тестах)
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.client = hc
	return c
}

// FetchAllCountries возвращает полный список стран с ограниченным набором полей
func (c *Client) FetchAllCountries(ctx context.Context) ([]models.Country, error) {
	return c.fetchList(ctx, "FetchAllCountries", c.allURL())
}

// FetchCountriesByRegion возвращает страны региона. Пустой регион или "all"
// эквивалентны FetchAllCountries.
func (c *Client) FetchCountriesByRegion(ctx context.Context, region string) ([]models.Country, error) {
	if region == "" || region == RegionAll {
		return c.fetchList(ctx, "FetchCountriesByRegion", c.allURL())
	}
	endpoint := fmt.Sprintf("%s/region/%s", c.BaseURL, url.PathEscape(region))
	return c.fetchList(ctx, "FetchCountriesByRegion", endpoint)
}

// FetchCountryByExactName ищет страну по точному (чувствительному к регистру) полному имени.
// Для пустого имени возвращает nil без запроса к API.
func (c *Client) FetchCountryByExactName(ctx context.Context, name string) (*models.Country, error) {
	if name == "" {
		return nil, nil
	}
	endpoint := fmt.Sprintf("%s/name/%s?fullText=true", c.BaseURL, url.PathEscape(name))
	countries, err := c.fetchList(ctx, "FetchCountryByExactName", endpoint)
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, &RequestError{Op: "FetchCountryByExactName", URL: endpoint, StatusCode: http.StatusNotFound}
	}
	return &countries[0], nil
}

// FetchCountryByCode ищет страну по alpha-коду. Любая ошибка превращается в nil:
// неизвестный сосед не должен ломать страницу деталей.
func (c *Client) FetchCountryByCode(ctx context.Context, code string) *models.Country {
	if code == "" {
		return nil
	}
	endpoint := fmt.Sprintf("%s/alpha/%s", c.BaseURL, url.PathEscape(code))
	countries, err := c.fetchList(ctx, "FetchCountryByCode", endpoint)
	if err != nil {
		c.logger.Debug("Country lookup by code failed", zap.String("code", code), zap.Error(err))
		return nil
	}
	if len(countries) == 0 {
		return nil
	}
	return &countries[0]
}

func (c *Client) allURL() string {
	return fmt.Sprintf("%s/all?fields=%s", c.BaseURL, listFields)
}

// fetchList выполняет GET и декодирует JSON массив стран
func (c *Client) fetchList(ctx context.Context, op, endpoint string) ([]models.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &RequestError{Op: op, URL: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RequestError{Op: op, URL: endpoint, Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("Error closing response body", zap.Error(err))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RequestError{Op: op, URL: endpoint, StatusCode: resp.StatusCode}
	}

	var countries []models.Country
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, &RequestError{Op: op, URL: endpoint, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	c.logger.Debug("Countries fetched",
		zap.String("op", op),
		zap.String("url", endpoint),
		zap.Int("count", len(countries)),
	)
	return countries, nil
}
