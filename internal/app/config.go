package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/pirago/internal/functor"
)

// Supported values of Config.Format.
const (
	FormatAuto       = "auto"
	FormatStandard   = "standard"
	FormatSimplified = "simplified"
	FormatHCL        = "hcl"
)

// RoleAll selects every functor role.
const RoleAll = "all"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // json file, hcl file or directory
	Format     string

	Build  string
	Item   string
	Flavor string
	Role   string
	// List resolves every target found in the configuration and ignores
	// Build, Item and Flavor.
	List bool
	// Strict runs the configuration validity check before resolving.
	Strict bool

	Output    string
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg, fills defaults and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	if cfg.Format == "" {
		cfg.Format = FormatAuto
	}
	switch cfg.Format {
	case FormatAuto, FormatStandard, FormatSimplified, FormatHCL:
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'auto', 'standard', 'simplified' or 'hcl'", cfg.Format)
	}

	if cfg.Role == "" {
		cfg.Role = RoleAll
	}
	if cfg.Role != RoleAll {
		if _, err := functor.ParseRole(cfg.Role); err != nil {
			return nil, err
		}
	}

	if !cfg.List {
		if cfg.Build == "" || cfg.Item == "" || cfg.Flavor == "" {
			return nil, errors.New("build, item and flavor are required unless listing all targets")
		}
	}

	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if cfg.Output != "text" && cfg.Output != "json" {
		return nil, fmt.Errorf("invalid output %q: must be 'text' or 'json'", cfg.Output)
	}

	return &cfg, nil
}

// roles returns the functor roles selected by cfg.Role.
func (c *Config) roles() []functor.Role {
	if c.Role == RoleAll {
		return functor.Roles
	}
	r, _ := functor.ParseRole(c.Role)
	return []functor.Role{r}
}
