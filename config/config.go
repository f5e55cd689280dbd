// Package config holds the settings shared by the relico command, the
// api package, and the REPL, with optional overrides from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds parameters for the api Run functions.
type Config struct {
	// OutDir is the directory generated files are written to. The
	// empty string means the source file's own directory.
	OutDir string `yaml:"out_dir"`
	// OutExt is the extension of generated files.
	OutExt string `yaml:"out_ext"`
	// Target is the Lingua Franca target language.
	Target string `yaml:"target"`
	// TimeUnit is the unit appended to connection delays.
	TimeUnit string `yaml:"time_unit"`

	// Debug indicates if debug output files should be generated.
	Debug bool `yaml:"debug"`

	// IgnoreFile is the name of the ignore file honored in batch mode.
	IgnoreFile string `yaml:"ignore_file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		OutExt:     ".lf",
		Target:     "Cpp",
		TimeUnit:   "sec",
		IgnoreFile: ".relicoignore",
	}
}

// LoadFile reads a YAML configuration file and overlays its values onto
// the defaults. Fields absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %v", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %v", path, err)
	}
	return cfg, nil
}
