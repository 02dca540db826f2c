package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvDataDir         = "PEOPLE_FILTER_DATA_DIR"
	EnvContinueOnError = "PEOPLE_FILTER_CONTINUE_ON_ERROR"
	EnvValidateOutput  = "PEOPLE_FILTER_VALIDATE"
	EnvVerbose         = "PEOPLE_FILTER_VERBOSE"
)

// FromEnv creates a configuration from environment variables.
// Unset variables leave the corresponding field empty.
func FromEnv() (Config, error) {
	cfg := Config{
		DataDir: os.Getenv(EnvDataDir),
	}

	switches := []struct {
		name  string
		field *bool
	}{
		{EnvContinueOnError, &cfg.ContinueOnError},
		{EnvValidateOutput, &cfg.ValidateOutput},
		{EnvVerbose, &cfg.Verbose},
	}
	for _, s := range switches {
		value := os.Getenv(s.name)
		if value == "" {
			continue
		}
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %v", s.name, err)
		}
		*s.field = enabled
	}

	return cfg, nil
}
