package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port           string        `envconfig:"PORT" default:"4000"`
	DataDir        string        `envconfig:"DATA_DIR" default:"data"`
	DataSource     string        `envconfig:"DATA_SOURCE" default:"fs"`
	ReloadInterval time.Duration `envconfig:"RELOAD_INTERVAL" default:"5m"`
	LoadRetries    int           `envconfig:"LOAD_RETRIES" default:"3"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat      string        `envconfig:"LOG_FORMAT" default:"text"`
	AdminToken     string        `envconfig:"ADMIN_TOKEN"`
	TradeScenario  string        `envconfig:"TRADE_SCENARIO"`
	Metrics        MetricsConfig `envconfig:"METRICS"`
}

// Load reads an optional .env file and then INSIGHTS_* environment variables.
// Values already present in the environment win over the .env file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{defaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DataSource {
	case SourceFS, SourceFixture:
	default:
		return fmt.Errorf("unknown data source %q", c.DataSource)
	}
	if c.ReloadInterval <= 0 {
		return fmt.Errorf("reload interval must be positive, got %s", c.ReloadInterval)
	}
	if c.LoadRetries <= 0 {
		return fmt.Errorf("load retries must be positive, got %d", c.LoadRetries)
	}
	return nil
}
