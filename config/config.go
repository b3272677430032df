// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// DefaultLineLength is the fallback number of residues per line in
// rendered FASTA output.
const DefaultLineLength = 80

// OutputConfig is settings for rendered FASTA output
type OutputConfig struct {
	// the number of residues per line in rendered output
	LineLength int `mapstructure:"line-length"`
}

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those passed from the command line
type Config struct {
	// Output settings
	Output OutputConfig
}

// New returns a new Config struct populated by Viper settings (either
// from a settings file and/or command line arguments)
func New() *Config {
	viper.SetDefault("output.line-length", DefaultLineLength)

	// settings is an optional path to a file that overrides the defaults
	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("failed to decode settings into struct: %v", err)
	}

	return c
}
