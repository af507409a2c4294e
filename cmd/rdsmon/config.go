package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional station config file: the tuned AF anchor
// frequency and any ODA app-ids to pre-register before the replay starts.
// Grounded on other_examples' bkram-uecprds Config/LoadConfig (YAML via
// gopkg.in/yaml.v3, os.ReadFile + yaml.Unmarshal, wrapped errors).
type Config struct {
	Station struct {
		TunedFrequencyMHz float64 `yaml:"tuned_frequency_mhz"`
	} `yaml:"station"`
	ODA []struct {
		AppID   uint16 `yaml:"app_id"`
		Code    int    `yaml:"code"`
		Version string `yaml:"version"`
	} `yaml:"oda"`
}

// LoadConfig reads and parses the YAML station config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}
