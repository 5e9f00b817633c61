package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Overpass OverpassConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	URLVerdictTTL time.Duration
	ReportTTL     time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled        bool
	ConsumerGroup  string
	MaxRetries     int
	RequestTimeout time.Duration
}

type OverpassConfig struct {
	ExportFile string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			URLVerdictTTL: time.Duration(viper.GetInt("URL_VERDICT_TTL_HOURS")) * time.Hour,
			ReportTTL:     time.Duration(viper.GetInt("REPORT_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:        viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:  viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:     viper.GetInt("WORKER_MAX_RETRIES"),
			RequestTimeout: time.Duration(viper.GetInt("WORKER_REQUEST_TIMEOUT")) * time.Second,
		},
		Overpass: OverpassConfig{
			ExportFile: viper.GetString("OVERPASS_EXPORT_FILE"),
		},
	}

	// Set default values if not provided
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "urlcheck-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Worker.RequestTimeout == 0 {
		cfg.Worker.RequestTimeout = 5 * time.Second
	}
	if cfg.Cache.URLVerdictTTL == 0 {
		// Результаты проверки URL живут 28 дней
		cfg.Cache.URLVerdictTTL = 28 * 24 * time.Hour
	}
	if cfg.Cache.ReportTTL == 0 {
		cfg.Cache.ReportTTL = 24 * time.Hour
	}
	if cfg.Overpass.ExportFile == "" {
		cfg.Overpass.ExportFile = "./data/overpass.json"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
