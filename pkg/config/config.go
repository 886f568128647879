package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"local"`
	Port         int    `envconfig:"PORT" default:"8000"`
	Debug        bool   `envconfig:"DEBUG" default:"false"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`
	MountPath    string `envconfig:"MOUNT_PATH"`
	BodyLimit    string `envconfig:"BODY_LIMIT" default:"10M"`

	// ImagePath is overwritten by every receive_image call.
	ImagePath      string `envconfig:"IMAGE_PATH" default:"./tmp/demo_cropped_image.jpg"`
	ImageCreateDir bool   `envconfig:"IMAGE_CREATE_DIR" default:"false"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.AppEnv == "local"
}
