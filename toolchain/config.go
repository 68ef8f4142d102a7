package toolchain

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/julert/errors"
)

// ConfigFile is the name of the build configuration file.
const ConfigFile = "jule.toml"

// Config represents a jule.toml build configuration.
type Config struct {
	Build BuildConfig `toml:"build"`

	// Dir is the directory containing the configuration file (set at load time).
	Dir string `toml:"-"`
}

// BuildConfig configures where generated source goes and how it is compiled.
type BuildConfig struct {
	OutDir        string   `toml:"out_dir"`
	OutFile       string   `toml:"out_file"`
	Compiler      string   `toml:"compiler"`
	CompilerFlags []string `toml:"compiler_flags"`
	Stamp         bool     `toml:"stamp"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	cfg := &Config{Dir: "."}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig parses a build configuration file. A directory path is
// resolved to the jule.toml inside it.
func LoadConfig(path string) (*Config, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.PhaseConfig, "config", path)
		}
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "read "+path)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path(path).
			Cause(err).
			Detail("parse error").
			Build()
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path(path).
			Value(undecoded[0].String()).
			Detail("unknown key %q", undecoded[0].String()).
			Build()
	}

	cfg.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "resolve "+path)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Build.OutDir == "" {
		c.Build.OutDir = "dist"
	}
	if c.Build.OutFile == "" {
		c.Build.OutFile = "main.go"
	}
	if c.Build.Compiler == "" {
		c.Build.Compiler = "go"
		if c.Build.CompilerFlags == nil {
			c.Build.CompilerFlags = []string{"build"}
		}
	}
}

// OutDirPath returns the absolute output directory.
func (c *Config) OutDirPath() string {
	if filepath.IsAbs(c.Build.OutDir) {
		return c.Build.OutDir
	}
	return filepath.Join(c.Dir, c.Build.OutDir)
}

// OutFilePath returns the path of the generated source file.
func (c *Config) OutFilePath() string {
	return filepath.Join(c.OutDirPath(), c.Build.OutFile)
}
