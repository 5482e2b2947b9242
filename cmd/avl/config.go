package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cryptonstudio/crypton-avl/console"
	"github.com/cryptonstudio/crypton-avl/types/avl"
)

// Config is read from the YAML file given by --config.
type Config struct {
	Prompt string   `yaml:"prompt"`
	Orders []string `yaml:"orders"`
	Print  bool     `yaml:"print"`
	Check  bool     `yaml:"check"`
	Seed   []int    `yaml:"seed"`
}

var defaultConfig = Config{
	Prompt: console.DefaultPrompt,
}

// LoadConfig reads the config file at path over the defaults.
// Empty path means defaults only.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig
	if path == "" {
		return &config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, err := config.TraversalOrders(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

// TraversalOrders parses the configured order names.
func (c *Config) TraversalOrders() ([]avl.Order, error) {
	orders := make([]avl.Order, 0, len(c.Orders))
	for _, name := range c.Orders {
		order, err := avl.ParseOrder(name)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
