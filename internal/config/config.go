// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Default data locations, relative to the working directory.
const (
	DefaultDataDir      = "src/data"
	DefaultPeopleInput  = "people.json"
	DefaultGroupsInput  = "peopleGroups.json"
	DefaultPeopleOutput = "people_filtered.json"
	DefaultGroupsOutput = "peopleGroups_filtered.json"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Paths. File names are resolved against DataDir unless absolute.
	DataDir      string `json:"data_dir,omitempty"`
	PeopleInput  string `json:"people_input,omitempty" validate:"required"`
	GroupsInput  string `json:"groups_input,omitempty" validate:"required"`
	PeopleOutput string `json:"people_output,omitempty" validate:"required,endswith=.json"`
	GroupsOutput string `json:"groups_output,omitempty" validate:"required,endswith=.json"`

	// Behavior
	ContinueOnError bool `json:"continue_on_error,omitempty"` // Keep going after a failed conversion
	ValidateOutput  bool `json:"validate_output,omitempty"`   // Check filtered documents against the output schemas
	Verbose         bool `json:"verbose,omitempty"`           // Print detailed debug information
}

// Paths holds the resolved input and output file paths.
type Paths struct {
	PeopleInput  string
	GroupsInput  string
	PeopleOutput string
	GroupsOutput string
}

// Defaults returns the configuration used when nothing else is given.
func Defaults() Config {
	return Config{
		DataDir:      DefaultDataDir,
		PeopleInput:  DefaultPeopleInput,
		GroupsInput:  DefaultGroupsInput,
		PeopleOutput: DefaultPeopleOutput,
		GroupsOutput: DefaultGroupsOutput,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	paths := c.Resolve()
	inputs := map[string]string{
		filepath.Clean(paths.PeopleInput): "people_input",
		filepath.Clean(paths.GroupsInput): "groups_input",
	}
	outputs := []struct{ name, path string }{
		{"people_output", paths.PeopleOutput},
		{"groups_output", paths.GroupsOutput},
	}
	for _, output := range outputs {
		if input, ok := inputs[filepath.Clean(output.path)]; ok {
			return fmt.Errorf("config error: '%s' would overwrite '%s'", output.name, input)
		}
	}
	if filepath.Clean(paths.PeopleOutput) == filepath.Clean(paths.GroupsOutput) {
		return fmt.Errorf("config error: 'people_output' and 'groups_output' must differ")
	}

	return nil
}

// Resolve joins the file names onto DataDir. Absolute file names are kept as is.
func (c Config) Resolve() Paths {
	resolve := func(name string) string {
		if filepath.IsAbs(name) || c.DataDir == "" {
			return name
		}
		return filepath.Join(c.DataDir, name)
	}

	return Paths{
		PeopleInput:  resolve(c.PeopleInput),
		GroupsInput:  resolve(c.GroupsInput),
		PeopleOutput: resolve(c.PeopleOutput),
		GroupsOutput: resolve(c.GroupsOutput),
	}
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to layer config file, environment and built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.PeopleInput == "" {
		result.PeopleInput = defaults.PeopleInput
	}
	if result.GroupsInput == "" {
		result.GroupsInput = defaults.GroupsInput
	}
	if result.PeopleOutput == "" {
		result.PeopleOutput = defaults.PeopleOutput
	}
	if result.GroupsOutput == "" {
		result.GroupsOutput = defaults.GroupsOutput
	}

	// Bool fields are switches: set on either side stays set.
	// CLI flags can still turn them off after merging.
	result.ContinueOnError = result.ContinueOnError || defaults.ContinueOnError
	result.ValidateOutput = result.ValidateOutput || defaults.ValidateOutput
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
