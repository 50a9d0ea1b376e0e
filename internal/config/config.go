package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-core-fx/config"
	"github.com/go-playground/validator/v10"
)

const appDir = "gg"

type defaultsConfig struct {
	Backend string `koanf:"backend" validate:"oneof=file badger"`
	File    string `koanf:"file"`
}

type storageConfig struct {
	DataDir string `koanf:"data_dir"`
}

type metricsConfig struct {
	Textfile string `koanf:"textfile"`
}

type Config struct {
	Defaults defaultsConfig `koanf:"defaults"`
	Storage  storageConfig  `koanf:"storage"`
	Metrics  metricsConfig  `koanf:"metrics"`
}

func Default() Config {
	//nolint:exhaustruct //default values
	return Config{
		Defaults: defaultsConfig{
			Backend: "file",
		},
	}
}

func New(validate *validator.Validate) (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return Config{}, err
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// resolvePaths fills unset file locations under the user config directory.
func (c *Config) resolvePaths() error {
	if c.Defaults.File != "" && c.Storage.DataDir != "" {
		return nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("failed to locate user config directory: %w", err)
	}

	if c.Defaults.File == "" {
		c.Defaults.File = filepath.Join(base, appDir, "default_dir")
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = filepath.Join(base, appDir, "data")
	}

	return nil
}
