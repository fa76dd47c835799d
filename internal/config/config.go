package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
// Секреты (пароль БД, ключи нотификаций) могут переопределяться переменными
// окружения
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Restaurant    RestaurantConfig    `toml:"restaurant"`
	Notifications NotificationsConfig `toml:"notifications"`
	Jobs          JobsConfig          `toml:"jobs"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // секунды
	WriteTimeout    int      `toml:"write_timeout"`    // секунды
	IdleTimeout     int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int      `toml:"shutdown_timeout"` // секунды
	AllowedOrigins  []string `toml:"allowed_origins"`  // CORS, пустой список = "*"
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RestaurantConfig параметры ресторана
// Каталог слотов фиксирован на уровне конфигурации и одинаков для всех
// столов и дат; никакого глобального состояния в коде
type RestaurantConfig struct {
	SlotCatalogue []string `toml:"slot_catalogue"`
}

// Slots возвращает каталог слотов, провалидированный и типизированный
// Пустой каталог в конфигурации заменяется каталогом по умолчанию
func (c RestaurantConfig) Slots() ([]types.TimeString, error) {
	if len(c.SlotCatalogue) == 0 {
		catalogue := make([]types.TimeString, len(domain.DefaultSlotCatalogue))
		copy(catalogue, domain.DefaultSlotCatalogue)
		return catalogue, nil
	}

	catalogue := make([]types.TimeString, 0, len(c.SlotCatalogue))
	seen := make(map[types.TimeString]struct{}, len(c.SlotCatalogue))
	var prev types.TimeString

	for _, raw := range c.SlotCatalogue {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("restaurant.slot_catalogue: %w", err)
		}
		if _, dup := seen[slot]; dup {
			return nil, fmt.Errorf("restaurant.slot_catalogue: duplicate slot %s", slot)
		}
		// Каталог обязан быть упорядочен по возрастанию
		if !prev.IsZero() && !prev.IsBefore(slot) {
			return nil, fmt.Errorf("restaurant.slot_catalogue: slots must be in ascending order, got %s after %s", slot, prev)
		}
		seen[slot] = struct{}{}
		catalogue = append(catalogue, slot)
		prev = slot
	}

	return catalogue, nil
}

// NotificationsConfig настройки подтверждений брони
type NotificationsConfig struct {
	EmailEnabled bool   `toml:"email_enabled"`
	SMSEnabled   bool   `toml:"sms_enabled"`
	FromEmail    string `toml:"from_email"`
	FromName     string `toml:"from_name"`
	FromPhone    string `toml:"from_phone"`
}

// JobsConfig настройки фоновых задач
type JobsConfig struct {
	Enabled              bool   `toml:"enabled"`
	CleanupSchedule      string `toml:"cleanup_schedule"`       // cron-выражение
	BookingRetentionDays int    `toml:"booking_retention_days"` // 0 = хранить вечно
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "aardvark-booking",
		},
		Jobs: JobsConfig{
			CleanupSchedule:      "0 4 * * *",
			BookingRetentionDays: 365,
		},
	}
}

// applyEnvOverrides переопределяет секреты из окружения
// Имена переменных совпадают с принятыми в деплое
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AARDVARK_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("AARDVARK_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in (0, 65535], got %d", c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if _, err := c.Restaurant.Slots(); err != nil {
		return err
	}
	if c.Jobs.BookingRetentionDays < 0 {
		return fmt.Errorf("jobs.booking_retention_days must not be negative")
	}
	return nil
}
