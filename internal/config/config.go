package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Remote struct {
		Enabled             bool   `yaml:"enabled"`
		BaseURL             string `yaml:"base_url"`
		Query               string `yaml:"query"`
		Location            string `yaml:"location"`
		Country             string `yaml:"country"`
		MaxJobs             int    `yaml:"max_jobs"`
		RefreshSeconds      int    `yaml:"refresh_seconds"`
		HydrateDescriptions bool   `yaml:"hydrate_descriptions"`
	} `yaml:"remote"`
}

// Default is the built-in configuration, used when no default config file
// ships next to the binary.
func Default() Config {
	var cfg Config
	cfg.App.Port = 38475
	cfg.Remote.Enabled = true
	cfg.Remote.BaseURL = "https://www.amazon.jobs/en/search.json"
	cfg.Remote.Query = "software development engineer"
	cfg.Remote.Location = "India"
	cfg.Remote.Country = "IND"
	cfg.Remote.MaxJobs = 10
	cfg.Remote.RefreshSeconds = 300
	return cfg
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
