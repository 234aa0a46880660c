// Package config собирает конфигурацию приложения из JSON файла, флагов командной строки
// и переменных окружения (в порядке возрастания приоритета).
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	defaultServerAddress = ":8080"
	defaultAPIBaseURL    = "https://restcountries.com/v3.1"
	defaultSecretKey     = "change-me-secret-key"
	defaultLocale        = "pt-BR"
	defaultMapZoom       = 5
	defaultTileURL       = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS"`    // Адрес для запуска HTTP-сервера
	APIBaseURL      string        `env:"API_BASE_URL"`      // Базовый адрес REST Countries API
	APITimeout      time.Duration `env:"API_TIMEOUT"`       // Таймаут запросов к API, 0 - без таймаута
	FileStoragePath string        `env:"FILE_STORAGE_PATH"` // Файл хранилища настроек
	DatabaseDSN     string        `env:"DATABASE_DSN"`      // Строка подключения к PostgreSQL
	SQLitePath      string        `env:"SQLITE_PATH"`       // Путь к базе SQLite
	SecretKey       string        `env:"SECRET_KEY"`        // Ключ подписи куки пользователя
	EnableHTTPS     string        `env:"ENABLE_HTTPS"`      // Любое непустое значение включает HTTPS
	TLSCertFile     string        `env:"TLS_CERT_FILE"`
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`
	Locale          string        `env:"LOCALE"`   // Локаль форматирования чисел и сортировки
	MapZoom         int           `env:"MAP_ZOOM"` // Масштаб карты на странице деталей
	TileURL         string        `env:"TILE_URL"` // Шаблон адреса тайлов карты
	LogLevel        string        `env:"LOG_LEVEL"`
	EnablePprof     bool          `env:"ENABLE_PPROF"` // Подключает /debug/pprof
	ConfigFile      string        `env:"CONFIG"`
}

// JSONConfig описывает файл конфигурации. Указатели позволяют отличить
// отсутствующее поле от нулевого значения.
type JSONConfig struct {
	ServerAddress   *string `json:"server_address,omitempty"`
	APIBaseURL      *string `json:"api_base_url,omitempty"`
	APITimeout      *string `json:"api_timeout,omitempty"`
	FileStoragePath *string `json:"file_storage_path,omitempty"`
	DatabaseDSN     *string `json:"database_dsn,omitempty"`
	SQLitePath      *string `json:"sqlite_path,omitempty"`
	SecretKey       *string `json:"secret_key,omitempty"`
	EnableHTTPS     *bool   `json:"enable_https,omitempty"`
	TLSCertFile     *string `json:"tls_cert_file,omitempty"`
	TLSKeyFile      *string `json:"tls_key_file,omitempty"`
	Locale          *string `json:"locale,omitempty"`
	MapZoom         *int    `json:"map_zoom,omitempty"`
	TileURL         *string `json:"tile_url,omitempty"`
	LogLevel        *string `json:"log_level,omitempty"`
	EnablePprof     *bool   `json:"enable_pprof,omitempty"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		ServerAddress: defaultServerAddress,
		APIBaseURL:    defaultAPIBaseURL,
		SecretKey:     defaultSecretKey,
		TLSCertFile:   "server.crt",
		TLSKeyFile:    "server.key",
		Locale:        defaultLocale,
		MapZoom:       defaultMapZoom,
		TileURL:       defaultTileURL,
		LogLevel:      "info",
	}
}

// NewConfig инициализирует конфигурацию из аргументов процесса и окружения.
func NewConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load собирает конфигурацию: значения по умолчанию, затем JSON файл, флаги и
// переменные окружения (имеют наивысший приоритет).
func Load(args []string) (*Config, error) {
	cfg := Default()

	// 1. JSON файл: путь берём из окружения или из флага -c
	configPath := os.Getenv("CONFIG")
	if configPath == "" {
		configPath = lookupFlag(args, "c", "config")
	}
	if configPath != "" {
		jsonCfg, err := loadJSONConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
		if err := cfg.applyJSONConfig(jsonCfg); err != nil {
			return nil, err
		}
		cfg.ConfigFile = configPath
	}

	// 2. Флаги командной строки
	fs := flag.NewFlagSet("countries", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	fs.StringVar(&cfg.APIBaseURL, "r", cfg.APIBaseURL, "Базовый адрес REST Countries API (env: API_BASE_URL)")
	fs.DurationVar(&cfg.APITimeout, "t", cfg.APITimeout, "Таймаут запросов к API (env: API_TIMEOUT)")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "Путь к файлу хранилища настроек (env: FILE_STORAGE_PATH)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "Строка подключения к PostgreSQL (env: DATABASE_DSN)")
	fs.StringVar(&cfg.SQLitePath, "l", cfg.SQLitePath, "Путь к базе SQLite (env: SQLITE_PATH)")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "Ключ подписи куки (env: SECRET_KEY)")
	fs.StringVar(&cfg.EnableHTTPS, "s", cfg.EnableHTTPS, "Включить HTTPS (env: ENABLE_HTTPS)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Локаль интерфейса (env: LOCALE)")
	fs.IntVar(&cfg.MapZoom, "zoom", cfg.MapZoom, "Масштаб карты (env: MAP_ZOOM)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Уровень логирования (env: LOG_LEVEL)")
	fs.BoolVar(&cfg.EnablePprof, "pprof", cfg.EnablePprof, "Подключить /debug/pprof (env: ENABLE_PPROF)")
	fs.StringVar(&cfg.ConfigFile, "c", cfg.ConfigFile, "Путь к JSON файлу конфигурации (env: CONFIG)")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Синоним -c")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// 3. Переменные окружения
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.ServerAddress == "" {
		return errors.New("server address must not be empty")
	}
	if c.MapZoom < 0 || c.MapZoom > 19 {
		return fmt.Errorf("map zoom must be within [0, 19], got %d", c.MapZoom)
	}
	if c.APITimeout < 0 {
		return fmt.Errorf("api timeout must not be negative, got %s", c.APITimeout)
	}
	return nil
}

// IsHTTPSEnabled сообщает, нужно ли запускать HTTPS сервер
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS != ""
}

// loadJSONConfig читает JSON файл. Отсутствующий файл не считается ошибкой.
func loadJSONConfig(filename string) (*JSONConfig, error) {
	if filename == "" {
		return &JSONConfig{}, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &JSONConfig{}, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var jsonCfg JSONConfig
	if err := json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return &jsonCfg, nil
}

// applyJSONConfig переносит заданные в файле значения в конфигурацию
func (c *Config) applyJSONConfig(j *JSONConfig) error {
	setString(&c.ServerAddress, j.ServerAddress)
	setString(&c.APIBaseURL, j.APIBaseURL)
	setString(&c.FileStoragePath, j.FileStoragePath)
	setString(&c.DatabaseDSN, j.DatabaseDSN)
	setString(&c.SQLitePath, j.SQLitePath)
	setString(&c.SecretKey, j.SecretKey)
	setString(&c.TLSCertFile, j.TLSCertFile)
	setString(&c.TLSKeyFile, j.TLSKeyFile)
	setString(&c.Locale, j.Locale)
	setString(&c.TileURL, j.TileURL)
	setString(&c.LogLevel, j.LogLevel)

	if j.EnableHTTPS != nil {
		if *j.EnableHTTPS {
			c.EnableHTTPS = "true"
		} else {
			c.EnableHTTPS = ""
		}
	}
	if j.EnablePprof != nil {
		c.EnablePprof = *j.EnablePprof
	}
	if j.MapZoom != nil {
		c.MapZoom = *j.MapZoom
	}
	if j.APITimeout != nil {
		timeout, err := time.ParseDuration(*j.APITimeout)
		if err != nil {
			return fmt.Errorf("invalid api_timeout %q: %w", *j.APITimeout, err)
		}
		c.APITimeout = timeout
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// lookupFlag находит значение флага до полноценного разбора аргументов
func lookupFlag(args []string, names ...string) string {
	for i, arg := range args {
		for _, name := range names {
			for _, prefix := range []string{"-" + name, "--" + name} {
				if arg == prefix && i+1 < len(args) {
					return args[i+1]
				}
				if strings.HasPrefix(arg, prefix+"=") {
					return strings.TrimPrefix(arg, prefix+"=")
				}
			}
		}
	}
	return ""
}
