package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server              ServerConfig              `toml:"server"`
	Database            DatabaseConfig            `toml:"database"`
	Logs                LogsConfig                `toml:"logs"`
	Metrics             MetricsConfig             `toml:"metrics"`
	NotificationService NotificationServiceConfig `toml:"notification_service"`
	Assignment          AssignmentConfig          `toml:"assignment"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotificationServiceConfig настройки клиента сервиса уведомлений (timeout в секундах)
type NotificationServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// AssignmentConfig настройки автоматического назначения персонала
type AssignmentConfig struct {
	// Окно рабочих часов по умолчанию для дней, которые сотрудник не переопределил
	DefaultStartTime string `toml:"default_start_time"`
	DefaultEndTime   string `toml:"default_end_time"`
	// Касание границ интервалов считается конфликтом
	InclusiveBoundaries *bool `toml:"inclusive_boundaries"`
	// Виды резервирований, которые запрещают создание бронирования в пересекающееся время
	BlockingKinds []string `toml:"blocking_kinds"`
}

// IsInclusive возвращает политику границ (по умолчанию включительная)
func (a AssignmentConfig) IsInclusive() bool {
	return a.InclusiveBoundaries == nil || *a.InclusiveBoundaries
}

// Load загружает конфигурацию из TOML файла, затем применяет .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные и некорректные значения
func (c *Config) Validate() error {
	missing := make([]string, 0)
	invalid := make([]string, 0)

	if c.Database.Host == "" {
		missing = append(missing, "database.host")
	}
	if c.Database.User == "" {
		missing = append(missing, "database.user")
	}
	if c.Database.DBName == "" {
		missing = append(missing, "database.dbname")
	}
	if c.NotificationService.URL == "" {
		missing = append(missing, "notification_service.url")
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		invalid = append(invalid, "server.http_port")
	}

	start, errStart := types.NewTimeStringFromString(c.Assignment.DefaultStartTime)
	end, errEnd := types.NewTimeStringFromString(c.Assignment.DefaultEndTime)
	if errStart != nil {
		invalid = append(invalid, "assignment.default_start_time")
	}
	if errEnd != nil {
		invalid = append(invalid, "assignment.default_end_time")
	}
	if errStart == nil && errEnd == nil && !start.IsBefore(end) {
		invalid = append(invalid, "assignment.default_end_time")
	}

	for _, kind := range c.Assignment.BlockingKinds {
		switch kind {
		case "event_booking", "service_booking", "appointment", "blocked_date":
		default:
			invalid = append(invalid, "assignment.blocking_kinds")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required config values: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid config values: %s", strings.Join(invalid, ", "))
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}

	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}

	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "smc-staffing-service"
	}

	if cfg.NotificationService.Timeout == 0 {
		cfg.NotificationService.Timeout = 5
	}

	if cfg.Assignment.DefaultStartTime == "" {
		cfg.Assignment.DefaultStartTime = "07:00"
	}
	if cfg.Assignment.DefaultEndTime == "" {
		cfg.Assignment.DefaultEndTime = "20:00"
	}
	if cfg.Assignment.BlockingKinds == nil {
		cfg.Assignment.BlockingKinds = []string{"blocked_date"}
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("DB_HOST")); v != "" {
		cfg.Database.Host = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT: %w", err)
		}
		cfg.Database.Port = port
	}
	if v := strings.TrimSpace(os.Getenv("DB_USER")); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_NAME")); v != "" {
		cfg.Database.DBName = v
	}
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT: %w", err)
		}
		cfg.Server.HTTPPort = port
	}
	if v := strings.TrimSpace(os.Getenv("NOTIFICATION_SERVICE_URL")); v != "" {
		cfg.NotificationService.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.Logs.Level = v
	}
	return nil
}
