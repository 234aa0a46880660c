package service

import (
	"context"
	"errors"

	"github.com/InQaaaaGit/countries.git/internal/models"
	"github.com/InQaaaaGit/countries.git/internal/storage"
)

// mockCountryClient мок источника стран
type mockCountryClient struct {
	FetchAllFunc    func(ctx context.Context) ([]models.Country, error)
	FetchRegionFunc func(ctx context.Context, region string) ([]models.Country, error)
	FetchByNameFunc func(ctx context.Context, name string) (*models.Country, error)
	FetchByCodeFunc func(ctx context.Context, code string) *models.Country
}

func (m *mockCountryClient) FetchAllCountries(ctx context.Context) ([]models.Country, error) {
	if m.FetchAllFunc != nil {
		return m.FetchAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCountryClient) FetchCountriesByRegion(ctx context.Context, region string) ([]models.Country, error) {
	if m.FetchRegionFunc != nil {
		return m.FetchRegionFunc(ctx, region)
	}
	return nil, nil
}

func (m *mockCountryClient) FetchCountryByExactName(ctx context.Context, name string) (*models.Country, error) {
	if m.FetchByNameFunc != nil {
		return m.FetchByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCountryClient) FetchCountryByCode(ctx context.Context, code string) *models.Country {
	if m.FetchByCodeFunc != nil {
		return m.FetchByCodeFunc(ctx, code)
	}
	return nil
}

var errStorageDown = errors.New("storage is down")

// failingStorage хранилище, все операции которого завершаются ошибкой
type failingStorage struct{}

func (failingStorage) Get(context.Context, string, string) (string, error) {
	return "", errStorageDown
}

func (failingStorage) Set(context.Context, string, string, string) error {
	return errStorageDown
}

func (failingStorage) CheckConnection(context.Context) error {
	return errStorageDown
}

func (failingStorage) Close() error {
	return nil
}

var _ storage.PreferenceStorage = failingStorage{}
