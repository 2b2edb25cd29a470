package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
		APIRoot string `yaml:"api_root"`
	} `yaml:"app"`

	Browse struct {
		PageSize int `yaml:"page_size"`
		// Sticky criteria applied when the UI opens without its own.
		Territory    string   `yaml:"territory"`
		RemoteOnly   bool     `yaml:"remote_only"`
		VisaOnly     bool     `yaml:"visa_only"`
		TechKeywords []string `yaml:"tech_keywords"`
	} `yaml:"browse"`

	Suggest struct {
		QuiescenceMS int `yaml:"quiescence_ms"`
		Limit        int `yaml:"limit"`
	} `yaml:"suggest"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Default is the config a fresh data dir starts from.
func Default() Config {
	var cfg Config
	cfg.App.Port = 38472
	cfg.App.DataDir = "."
	cfg.App.APIRoot = "http://localhost:8000/api/v1"
	cfg.Browse.PageSize = 10
	cfg.Suggest.QuiescenceMS = 350
	cfg.Suggest.Limit = 6
	return cfg
}

// Quiescence converts the configured debounce window to a duration.
func (c Config) Quiescence() time.Duration {
	return time.Duration(c.Suggest.QuiescenceMS) * time.Millisecond
}
