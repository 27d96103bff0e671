package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Backend    Backend    `yaml:"backend"`
	Session    Session    `yaml:"session"`
	CSRF       CSRF       `yaml:"csrf"`
	RateLimit  RateLimit  `yaml:"rate_limit"`
	Categories []Category `yaml:"categories"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8081"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	StaticDir   string        `yaml:"static_dir" env-default:"./static"`
}

// Backend points at the REST service that owns users, events and registrations.
type Backend struct {
	BaseURL  string `yaml:"base_url" env:"BACKEND_BASE_URL" env-default:"http://localhost:8080/api/v1"`
	AuthMode string `yaml:"auth_mode" env:"BACKEND_AUTH_MODE" env-default:"cookie"`
}

type Session struct {
	CookieName string        `yaml:"cookie_name" env-default:"vh_session"`
	Secure     bool          `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
	MaxAge     time.Duration `yaml:"max_age" env-default:"24h"`
}

type CSRF struct {
	Key    string `yaml:"key" env:"CSRF_KEY" env-required:"true"`
	Secure bool   `yaml:"secure" env:"CSRF_SECURE" env-default:"false"`
}

type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"1"`
	Burst int     `yaml:"burst" env-default:"5"`
}

type Category struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// DefaultCategories seeds the category catalog until the backend answers.
var DefaultCategories = []Category{
	{ID: 1, Name: "Environment"},
	{ID: 2, Name: "Education"},
	{ID: 3, Name: "Health"},
	{ID: 4, Name: "Community"},
	{ID: 5, Name: "Charity"},
}

const csrfKeyLen = 32

func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(cfg.Categories) == 0 {
		cfg.Categories = append([]Category(nil), DefaultCategories...)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.CSRF.Key) != csrfKeyLen {
		return fmt.Errorf("csrf key must be %d bytes, got %d", csrfKeyLen, len(c.CSRF.Key))
	}

	switch c.Backend.AuthMode {
	case "cookie", "bearer":
	default:
		return fmt.Errorf("unknown backend auth mode %q", c.Backend.AuthMode)
	}

	if c.Backend.BaseURL == "" {
		return errors.New("backend base url is empty")
	}

	return nil
}
