package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	Port        string `envconfig:"PORT"         default:"3000"`
	LogLevel    string `envconfig:"LOG_LEVEL"    default:"info"`
}

// Load reads .env (if present) and the process environment into a Config.
// The result is passed down explicitly; there is no package-level instance.
func Load(log *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Error loading .env file (continuing): %v", err)
		}
	} else {
		log.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	log.Infof("Configuration loaded: Port=%s, LogLevel=%s", cfg.Port, cfg.LogLevel)
	return &cfg, nil
}
