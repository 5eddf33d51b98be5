package config

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ListenAddr   string  `json:"listenAddr" envconfig:"LISTEN_ADDR"`
	DatabasePath string  `json:"databasePath" envconfig:"DATABASE_PATH"`
	ProfitMargin float64 `json:"profitMargin" envconfig:"PROFIT_MARGIN"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./shoptrack_config.json"

// LoadConfig reads the config file, applies defaults for anything
// unset and then lets SHOPTRACK_* environment variables override the
// result. A missing file is not an error; an unreadable or malformed
// file is reported, but the returned config still carries the defaults
// so the caller can keep running on them.
func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	tempCfg := Config{}
	var loadErr error
	file, err := os.ReadFile(configFilePath)
	switch {
	case err == nil:
		if err := json.Unmarshal(file, &tempCfg); err != nil {
			tempCfg = Config{}
			loadErr = err
		}
	case !os.IsNotExist(err):
		loadErr = err
	}

	applyDefaults(&tempCfg)

	if err := envconfig.Process("shoptrack", &tempCfg); err != nil && loadErr == nil {
		loadErr = err
	}

	cfg = tempCfg
	return cfg, loadErr
}

// SaveConfig writes the config file and makes newCfg current.
func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

func applyDefaults(c *Config) {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "./shoptrack.db"
	}
	if c.ProfitMargin == 0 {
		c.ProfitMargin = 0.30
	}
}
