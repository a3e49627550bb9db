// Package config provides configuration for the tempura billing service.
// It loads settings from environment variables and .env files, with an
// optional YAML file for the restaurant identity and table layout.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults matching a single local deployment.
const (
	DefaultAddr      = "127.0.0.1:5000"
	DefaultMenuFile  = "menu.csv"
	DefaultBillsFile = "bills.csv"
)

// Config represents the application configuration.
type Config struct {
	Addr       string
	DataDir    string
	MenuFile   string
	BillsFile  string
	Debug      bool
	Restaurant Restaurant
}

// Restaurant carries the identity shown on the billing page and the seating
// layout used for per-table carts.
type Restaurant struct {
	Name    string   `yaml:"name"`
	Address string   `yaml:"address"`
	Tables  []string `yaml:"tables"`
}

// Load loads configuration from environment variables. It automatically
// loads a .env file from the current directory if available; a custom .env
// path can be given. If TEMPURA_CONFIG points at a YAML file, the
// restaurant section is read from it.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	cfg := &Config{
		Addr:      getEnvOrDefault("TEMPURA_ADDR", DefaultAddr),
		DataDir:   getEnvOrDefault("TEMPURA_DATA_DIR", "."),
		MenuFile:  getEnvOrDefault("TEMPURA_MENU_FILE", DefaultMenuFile),
		BillsFile: getEnvOrDefault("TEMPURA_BILLS_FILE", DefaultBillsFile),
		Debug:     os.Getenv("DEBUG") == "true",
		Restaurant: Restaurant{
			Name:    "Tempura Hotel",
			Address: "123 Main Road, Pondicherry | Ph: 9876543210",
			Tables: []string{
				"Outside 1", "Outside 2", "Outside 3",
				"Inside 1", "Inside 2", "Inside 3",
				"Last 1", "Last 2",
			},
		},
	}

	if path := os.Getenv("TEMPURA_CONFIG"); path != "" {
		if err := cfg.loadRestaurant(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// loadRestaurant overlays the restaurant section from a YAML file. Fields
// left empty in the file keep their defaults.
func (c *Config) loadRestaurant(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var r Restaurant
	if err := yaml.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	if r.Name != "" {
		c.Restaurant.Name = r.Name
	}
	if r.Address != "" {
		c.Restaurant.Address = r.Address
	}
	if len(r.Tables) > 0 {
		c.Restaurant.Tables = r.Tables
	}
	return nil
}

// MenuPath returns the full path of the menu catalog file.
func (c *Config) MenuPath() string {
	return filepath.Join(c.DataDir, c.MenuFile)
}

// BillsPath returns the full path of the bill ledger file.
func (c *Config) BillsPath() string {
	return filepath.Join(c.DataDir, c.BillsFile)
}

// getEnvOrDefault returns the value of the environment variable or a
// default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
