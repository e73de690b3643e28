package config

import "fmt"

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Model   ModelConfig   `mapstructure:"model"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Gate    GateConfig    `mapstructure:"gate"`
	Archive ArchiveConfig `mapstructure:"archive"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type ModelConfig struct {
	Path         string `mapstructure:"path"`
	MetadataPath string `mapstructure:"metadata_path"`
	TopK         int    `mapstructure:"top_k"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// GateConfig drives the acceptance decision. Threshold is on the normalized
// [0,1] confidence scale.
type GateConfig struct {
	Threshold    float64  `mapstructure:"threshold"`
	CropKeywords []string `mapstructure:"crop_keywords"`
}

type ArchiveConfig struct {
	Dir string `mapstructure:"dir"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.Model.Path == "" {
		return fmt.Errorf("model.path is required")
	}
	if c.Model.MetadataPath == "" {
		return fmt.Errorf("model.metadata_path is required")
	}
	if c.Model.TopK < 1 {
		return fmt.Errorf("model.top_k must be at least 1, got %d", c.Model.TopK)
	}
	if c.Gate.Threshold < 0 || c.Gate.Threshold > 1 {
		return fmt.Errorf("gate.threshold must be in [0,1], got %v", c.Gate.Threshold)
	}
	return nil
}
