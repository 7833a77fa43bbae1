package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type S3Config struct {
	Endpoint  string `yaml:"endpoint" json:"endpoint"`
	AccessKey string `yaml:"access_key" json:"access_key"`
	SecretKey string `yaml:"secret_key" json:"secret_key"`
	Bucket    string `yaml:"bucket" json:"bucket"`
	Secure    bool   `yaml:"secure" json:"secure"`
}

type Config struct {
	ListenAddr string `yaml:"listen_addr" json:"listen_addr" validate:"required"`
	// StagingDir — каталог для незавершённых загрузок (сегменты частей).
	StagingDir string `yaml:"staging_dir" json:"staging_dir" validate:"required"`
	// ContentBackend выбирает хранилище готовых блобов: fs или s3.
	ContentBackend string   `yaml:"content_backend" json:"content_backend" validate:"oneof=fs s3"`
	ContentDir     string   `yaml:"content_dir" json:"content_dir" validate:"required_if=ContentBackend fs"`
	S3             S3Config `yaml:"s3" json:"s3"`
	// MetaDSN — "memory://" либо postgres DSN для индекса метаданных.
	MetaDSN       string `yaml:"meta_dsn" json:"meta_dsn" validate:"required"`
	GCTTLHours    int    `yaml:"gc_ttl_hours" json:"gc_ttl_hours" validate:"gte=0"`
	GCIntervalMin int    `yaml:"gc_interval_min" json:"gc_interval_min" validate:"gte=0"`
}

// Load читает YAML-конфигурацию, применяет ENV-переопределения и валидирует результат.
func Load() (*Config, error) {
	path := getenv("CONFIG_PATH", "./config.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	applyDefaults(&c)
	applyEnv(&c)

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate проверяет структуру конфигурации валидатором по тегам.
func Validate(c *Config) error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyDefaults(c *Config) {
	if c.ContentBackend == "" {
		c.ContentBackend = "fs"
	}
	if c.MetaDSN == "" {
		c.MetaDSN = "memory://"
	}
	if c.GCTTLHours == 0 {
		c.GCTTLHours = 24
	}
	if c.GCIntervalMin == 0 {
		c.GCIntervalMin = 30
	}
}

// ENV override
func applyEnv(c *Config) {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("STAGING_DIR"); v != "" {
		c.StagingDir = v
	}
	if v := os.Getenv("CONTENT_DIR"); v != "" {
		c.ContentDir = v
	}
	if v := os.Getenv("CONTENT_BACKEND"); v != "" {
		c.ContentBackend = v
	}
	if v := os.Getenv("META_DSN"); v != "" {
		c.MetaDSN = v
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		c.S3.Endpoint = v
	}
	if v := os.Getenv("S3_ACCESS_KEY"); v != "" {
		c.S3.AccessKey = v
	}
	if v := os.Getenv("S3_SECRET_KEY"); v != "" {
		c.S3.SecretKey = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		c.S3.Bucket = v
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
