package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Http           Http           `yaml:"http"`
	Log            Log            `yaml:"log"`
	Records        Records        `yaml:"records"`
	Infrastructure Infrastructure `yaml:"infrastructure"`
}

type Http struct {
	Port           int `yaml:"port" env:"PORT" env-default:"5000"`
	UploadMaxBytes int `yaml:"upload_max_bytes" env:"UPLOAD_MAX_BYTES" env-default:"10485760"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type Records struct {
	DefaultPageSize int `yaml:"default_page_size" env:"PAGE_SIZE_DEFAULT" env-default:"50"`
}

type Infrastructure struct {
	Db    Db    `yaml:"db"`
	Redis Redis `yaml:"redis"`
	Amqp  Amqp  `yaml:"amqp"`
}

type Db struct {
	// postgres, mysql or sqlite
	Driver string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"`
	Dsn    string `yaml:"dsn" env:"DB_DSN" env-default:"users.db"`
}

// Redis is disabled when Addr is empty.
type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	Key      string `yaml:"key" env:"REDIS_SUMMARY_KEY" env-default:"excel-users:ingestion:latest"`
}

// Amqp is disabled when Url is empty.
type Amqp struct {
	Url      string `yaml:"url" env:"AMQP_URL"`
	Exchange string `yaml:"exchange" env:"AMQP_EXCHANGE" env-default:"users"`
}

// Load reads an optional .env file, then CONFIG_PATH (yaml) when set,
// with environment variables taking precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
