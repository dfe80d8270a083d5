package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	HTTP    HTTPConfig    `yaml:"http"`
	Adzuna  AdzunaConfig  `yaml:"adzuna"`
	Redis   RedisConfig   `yaml:"redis"`
	Dataset DatasetConfig `yaml:"dataset"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// AdzunaConfig configures the job feed client. AppID and AppKey are
// secrets and are only ever read from the environment.
type AdzunaConfig struct {
	BaseURL  string `yaml:"base_url"`
	Country  string `yaml:"country"`
	Query    string `yaml:"query"`
	Location string `yaml:"location"`
	Pages    int    `yaml:"pages"`
	PerPage  int    `yaml:"per_page"`
	AppID    string `yaml:"-"`
	AppKey   string `yaml:"-"`
}

type RedisConfig struct {
	Host     string        `yaml:"host"`
	Port     string        `yaml:"port"`
	Password string        `yaml:"-"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type DatasetConfig struct {
	Dir     string `yaml:"dir"`
	CSVKeep int    `yaml:"csv_keep"`
}

var errInvalidConfig = errors.New("invalid configuration")

// Load reads the optional YAML file at path, layers environment
// variables on top and fills defaults. An empty path means env and
// defaults only.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		App: AppConfig{
			Name:        "jobpulse",
			Environment: "development",
			LogLevel:    "info",
			LogFormat:   "console",
		},
		HTTP: HTTPConfig{
			Port:            "8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Adzuna: AdzunaConfig{
			BaseURL: "https://api.adzuna.com/v1/api",
			Country: "in",
			Query:   "software engineer",
			Pages:   5,
			PerPage: 50,
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6379",
			TTL:  10 * time.Minute,
		},
		Dataset: DatasetConfig{
			Dir:     "data",
			CSVKeep: 3,
		},
	}
}

func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	set(&cfg.App.Environment, "APP_ENV")
	set(&cfg.App.LogLevel, "LOG_LEVEL")
	set(&cfg.App.LogFormat, "LOG_FORMAT")
	set(&cfg.HTTP.Port, "HTTP_PORT")
	set(&cfg.Adzuna.AppID, "ADZUNA_APP_ID")
	set(&cfg.Adzuna.AppKey, "ADZUNA_APP_KEY")
	set(&cfg.Adzuna.Country, "ADZUNA_COUNTRY")
	set(&cfg.Redis.Host, "REDIS_HOST")
	set(&cfg.Redis.Port, "REDIS_PORT")
	set(&cfg.Redis.Password, "REDIS_PASSWORD")
	set(&cfg.Dataset.Dir, "DATA_DIR")

	if v := strings.TrimSpace(os.Getenv("REDIS_TTL")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Redis.TTL = time.Duration(secs) * time.Second
		}
	}
}

func validate(cfg Config) error {
	var problems []string

	if strings.TrimSpace(cfg.HTTP.Port) == "" {
		problems = append(problems, "http.port is empty")
	}
	if strings.TrimSpace(cfg.Dataset.Dir) == "" {
		problems = append(problems, "dataset.dir is empty")
	}
	if cfg.Adzuna.Pages < 1 {
		problems = append(problems, "adzuna.pages must be >= 1")
	}
	if cfg.Adzuna.PerPage < 1 || cfg.Adzuna.PerPage > 50 {
		problems = append(problems, "adzuna.per_page must be in 1..50")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
