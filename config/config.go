package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/riskcalc/risk"
	"gopkg.in/yaml.v3"
)

// Config represents the complete calculator configuration
type Config struct {
	Account    AccountConfig         `json:"account" yaml:"account"`
	Allocation risk.AllocationParams `json:"allocation" yaml:"allocation"`
	Policy     risk.Policy           `json:"policy" yaml:"policy"`
	Journal    JournalConfig         `json:"journal" yaml:"journal"`
	Log        LogConfig             `json:"log" yaml:"log"`
	Server     ServerConfig          `json:"server" yaml:"server"`
}

// AccountConfig holds the defaults used for single trade calculations
type AccountConfig struct {
	Currency    string  `json:"currency" yaml:"currency"`
	Balance     float64 `json:"balance" yaml:"balance"`
	RiskPercent float64 `json:"risk_percent" yaml:"risk_percent"` // 2 = 2%
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type            string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	TradesFile      string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	AllocationsFile string `json:"allocations_file,omitempty" yaml:"allocations_file,omitempty"`
	DBPath          string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LogConfig controls console and rotating file logging
type LogConfig struct {
	Level      string `json:"level" yaml:"level"`
	Console    bool   `json:"console" yaml:"console"`
	File       bool   `json:"file" yaml:"file"`
	FilePath   string `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	MaxSize    int    `json:"max_size,omitempty" yaml:"max_size,omitempty"` // megabytes
	MaxBackups int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty"`
	MaxAge     int    `json:"max_age,omitempty" yaml:"max_age,omitempty"` // days
}

type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Account.RiskPercent <= 0 || c.Account.RiskPercent > 100 {
		return fmt.Errorf("account.risk_percent must be between 0 and 100")
	}
	if msgs := risk.ValidateParams(c.Allocation); len(msgs) > 0 {
		return fmt.Errorf("allocation: %s", strings.Join(msgs, "; "))
	}
	if c.Policy.MaxRiskPct < 0 || c.Policy.MaxRiskPct > 100 {
		return fmt.Errorf("policy.max_risk_percent must be between 0 and 100")
	}
	if c.Policy.MinRR < 0 {
		return fmt.Errorf("policy.min_rr must not be negative")
	}
	if c.Policy.MinTradesPerDay < 0 {
		return fmt.Errorf("policy.min_trades_per_day must not be negative")
	}
	switch c.Journal.Type {
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.AllocationsFile == "" {
			return fmt.Errorf("journal trades_file and allocations_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	case "none":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if c.Log.File && c.Log.FilePath == "" {
		return fmt.Errorf("log.file_path required when log.file is set")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency:    "USD",
			Balance:     10000,
			RiskPercent: 2,
		},
		Allocation: risk.AllocationParams{
			StartingCapital:      10000,
			RiskTolerance:        2,
			DailyMaxLoss:         5,
			WeeklyMaxLoss:        10,
			SharePrice:           50,
			NumShares:            100,
			ProfitTargetPerShare: 2,
		},
		Policy: risk.Policy{
			MaxRiskPct:      2,
			MinRR:           1.5,
			MinTradesPerDay: 1,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./riskcalc.sqlite",
		},
		Log: LogConfig{
			Level:      "info",
			Console:    true,
			File:       false,
			FilePath:   "./logs/riskcalc.log",
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
