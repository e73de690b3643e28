package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads config.yaml (from ./configs, the working directory, or two
// levels up when run from cmd/server), applies PLANTSIGHT_* environment
// overrides, fills defaults and validates.
func Load() (*Config, error) {
	// .env is optional; system environment wins either way.
	for _, path := range []string{".env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.AddConfigPath("../..")

	v.SetEnvPrefix("PLANTSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No file is fine; defaults plus env carry the service.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("model.path", "models/best.onnx")
	v.SetDefault("model.metadata_path", "models/model_metadata.json")
	v.SetDefault("model.top_k", 3)
	v.SetDefault("catalog.path", "labels_remedies.yaml")
	v.SetDefault("gate.threshold", 0.70)
	v.SetDefault("gate.crop_keywords", []string{"cotton", "maize", "wheat", "rice", "sugarcane"})
	v.SetDefault("archive.dir", "rejected")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
