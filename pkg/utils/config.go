package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/geomorph-lab/moraine-offset/pkg/geomath"
	"github.com/geomorph-lab/moraine-offset/pkg/structgeo"
)

// Config represents the client configuration
type Config struct {
	Site  SiteConfig  `yaml:"site" mapstructure:"site"`
	Fault FaultConfig `yaml:"fault" mapstructure:"fault"`
	Sweep SweepConfig `yaml:"sweep" mapstructure:"sweep"`
}

// SiteConfig describes the survey site the defaults belong to
type SiteConfig struct {
	Name      string `yaml:"name" mapstructure:"name"`
	SlipUnits string `yaml:"slip_units" mapstructure:"slip_units"`
}

// FaultConfig contains the default fault geometry and slip
type FaultConfig struct {
	DipDirectionDeg float64 `yaml:"dip_direction_deg" mapstructure:"dip_direction_deg"`
	DipDeg          float64 `yaml:"dip_deg" mapstructure:"dip_deg"`
	DipSlipM        float64 `yaml:"dip_slip_m" mapstructure:"dip_slip_m"`
}

// SweepConfig contains the default trend sweep window
type SweepConfig struct {
	FromDeg float64 `yaml:"from_deg" mapstructure:"from_deg"`
	ToDeg   float64 `yaml:"to_deg" mapstructure:"to_deg"`
	StepDeg float64 `yaml:"step_deg" mapstructure:"step_deg"`
}

// FaultPlane returns the configured fault orientation as a domain value.
func (c *Config) FaultPlane() structgeo.FaultPlane {
	return structgeo.FaultPlane{
		DipDirection: geomath.Degrees(c.Fault.DipDirectionDeg),
		Dip:          geomath.Degrees(c.Fault.DipDeg),
	}
}

// SlipVector returns the configured dip-slip magnitude as a domain value.
func (c *Config) SlipVector() structgeo.SlipVector {
	return structgeo.SlipVector{DipSlip: c.Fault.DipSlipM}
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name:      "unnamed site",
			SlipUnits: "m",
		},
		Fault: FaultConfig{
			DipDirectionDeg: 70,
			DipDeg:          50,
			DipSlipM:        33.5,
		},
		Sweep: SweepConfig{
			FromDeg: 0,
			ToDeg:   90,
			StepDeg: 5,
		},
	}
}

// LoadConfig loads configuration from file or creates default
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	homeDir, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(homeDir, ".moraine-offset"))
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MORAINE_OFFSET")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createDefaultConfig()
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config) error {
	configFile, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration saved to: %s\n", configFile)
	return nil
}

// createDefaultConfig creates and saves a default configuration
func createDefaultConfig() (*Config, error) {
	config := DefaultConfig()

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig validates the configuration against the domains the
// pipeline documents for its inputs.
func validateConfig(config *Config) error {
	if err := config.FaultPlane().Validate(); err != nil {
		return err
	}
	if err := config.SlipVector().Validate(); err != nil {
		return err
	}
	if config.Sweep.StepDeg <= 0 {
		return fmt.Errorf("sweep step must be positive, got %g", config.Sweep.StepDeg)
	}
	if config.Sweep.ToDeg < config.Sweep.FromDeg {
		return fmt.Errorf("sweep window [%g,%g] is empty", config.Sweep.FromDeg, config.Sweep.ToDeg)
	}
	if config.Site.SlipUnits == "" {
		return fmt.Errorf("slip units cannot be empty")
	}
	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".moraine-offset", "config.yaml"), nil
}
