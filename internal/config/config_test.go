package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"data_dir": "exports",
		"people_output": "people_small.json",
		"continue_on_error": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "exports", cfg.DataDir)
	assert.Equal(t, "people_small.json", cfg.PeopleOutput)
	assert.Empty(t, cfg.PeopleInput)
	assert.True(t, cfg.ContinueOnError)
	assert.False(t, cfg.ValidateOutput)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_RelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"data_dir": "d"}`), 0644))
	chdir(t, dir)

	cfg, err := LoadConfig("config.json")
	require.NoError(t, err)
	assert.Equal(t, "d", cfg.DataDir)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestDefaults_Resolve(t *testing.T) {
	cfg := Defaults()
	paths := cfg.Resolve()

	assert.Equal(t, "src/data/people.json", filepath.ToSlash(paths.PeopleInput))
	assert.Equal(t, "src/data/peopleGroups.json", filepath.ToSlash(paths.GroupsInput))
	assert.Equal(t, "src/data/people_filtered.json", filepath.ToSlash(paths.PeopleOutput))
	assert.Equal(t, "src/data/peopleGroups_filtered.json", filepath.ToSlash(paths.GroupsOutput))
	assert.NoError(t, cfg.Validate())
}

func TestResolve_OnDefaultsValue(t *testing.T) {
	paths := Defaults().Resolve()
	assert.Equal(t, filepath.Join(DefaultDataDir, DefaultGroupsOutput), paths.GroupsOutput)
}

func TestResolve_AbsoluteAndEmptyDataDir(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "people.json")
	cfg := Config{
		PeopleInput: abs,
		GroupsInput: "groups.json",
	}

	paths := cfg.Resolve()
	assert.Equal(t, abs, paths.PeopleInput)
	assert.Equal(t, "groups.json", paths.GroupsInput)

	cfg.DataDir = "data"
	assert.Equal(t, abs, cfg.Resolve().PeopleInput)
	assert.Equal(t, filepath.Join("data", "groups.json"), cfg.Resolve().GroupsInput)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			modify: func(*Config) {},
		},
		{
			name:    "missing people input",
			modify:  func(c *Config) { c.PeopleInput = "" },
			wantErr: "PeopleInput",
		},
		{
			name:    "output without json extension",
			modify:  func(c *Config) { c.GroupsOutput = "groups.txt" },
			wantErr: "GroupsOutput",
		},
		{
			name:    "output overwrites input",
			modify:  func(c *Config) { c.PeopleOutput = "people.json" },
			wantErr: "'people_output' would overwrite 'people_input'",
		},
		{
			name:    "output overwrites other input",
			modify:  func(c *Config) { c.GroupsOutput = "./people.json" },
			wantErr: "'groups_output' would overwrite 'people_input'",
		},
		{
			name: "outputs collide",
			modify: func(c *Config) {
				c.PeopleOutput = "out.json"
				c.GroupsOutput = "out.json"
			},
			wantErr: "must differ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config error")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		DataDir:        "exports",
		PeopleOutput:   "people_small.json",
		ValidateOutput: true,
	}

	merged := partial.MergeWithDefaults(Defaults())

	// Custom values should be preserved
	assert.Equal(t, "exports", merged.DataDir)
	assert.Equal(t, "people_small.json", merged.PeopleOutput)
	assert.True(t, merged.ValidateOutput)

	// Default values should fill in empty fields
	assert.Equal(t, DefaultPeopleInput, merged.PeopleInput)
	assert.Equal(t, DefaultGroupsInput, merged.GroupsInput)
	assert.Equal(t, DefaultGroupsOutput, merged.GroupsOutput)
	assert.False(t, merged.ContinueOnError)
}

func TestMergeWithDefaults_Switches(t *testing.T) {
	cfg := Config{Verbose: true}

	merged := cfg.MergeWithDefaults(Config{ContinueOnError: true})

	assert.True(t, merged.Verbose)
	assert.True(t, merged.ContinueOnError)
	assert.False(t, merged.ValidateOutput)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{DataDir: "exports"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "exports", merged.DataDir)
	assert.Empty(t, merged.PeopleInput)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
