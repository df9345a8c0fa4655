// Package config loads h5gen configuration from JSONC files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/h5fixture/pkg/gen"
	"github.com/calvinalkan/h5fixture/pkg/h5type"
)

// Error variables for config loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config")
)

// Config holds all configuration options.
type Config struct {
	Seed  uint64          `json:"seed"`
	Ndim  int             `json:"ndim"`
	Count int             `json:"count"`
	Type  string          `json:"type"`
	Slice gen.SliceConfig `json:"slice"`

	// Resolved (computed, not serialized)
	EffectiveCwd string            `json:"-"`
	Descriptor   h5type.Descriptor `json:"-"`

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project or explicit config if loaded, empty otherwise
}

// fileConfig is the on-disk form. Absent keys stay nil so they do not
// override lower-precedence layers.
type fileConfig struct {
	Seed  *uint64    `json:"seed"`
	Ndim  *int       `json:"ndim"`
	Count *int       `json:"count"`
	Type  *string    `json:"type"`
	Slice *fileRates `json:"slice"`
}

type fileRates struct {
	IndexRate         *float64 `json:"index_rate"`
	OpenEndRate       *float64 `json:"open_end_rate"`
	WellFormedEndRate *float64 `json:"well_formed_end_rate"`
	UnitStepRate      *float64 `json:"unit_step_rate"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Seed:  1,
		Ndim:  2,
		Count: 1,
		Type:  "f64",
		Slice: gen.DefaultSliceConfig(),
	}
}

// FileName is the default project config file name.
const FileName = ".h5gen.json"

// MaxNdim is the largest number of axes an HDF5 dataspace can have.
const MaxNdim = 32

// globalPath returns $XDG_CONFIG_HOME/h5gen/config.json if set, otherwise
// ~/.config/h5gen/config.json. Empty if neither variable is set.
func globalPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "h5gen", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "h5gen", "config.json")
	}

	return ""
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	SeedOverride    *uint64           // --seed flag value; nil means no override
	Env             map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config ($XDG_CONFIG_HOME/h5gen/config.json)
// 3. Project config file (.h5gen.json, if exists)
// 4. Explicit config file via ConfigPath (replaces 3)
// 5. CLI overrides.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := Default()

	if path := globalPath(input.Env); path != "" {
		fileCfg, loaded, err := loadFile(path, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg.Sources.Global = path
			cfg = merge(cfg, fileCfg)
		}
	}

	projectCfg, projectPath, err := loadProject(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = merge(cfg, projectCfg)

	if input.SeedOverride != nil {
		cfg.Seed = *input.SeedOverride
	}

	cfg.EffectiveCwd = workDir

	err = Validate(&cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks cfg and resolves its type expression into
// cfg.Descriptor. Failures wrap [ErrConfigInvalid].
func Validate(cfg *Config) error {
	if cfg.Ndim < 0 {
		return fmt.Errorf("%w: ndim cannot be negative (got %d)", ErrConfigInvalid, cfg.Ndim)
	}

	if cfg.Ndim > MaxNdim {
		return fmt.Errorf("%w: ndim cannot exceed %d (got %d)", ErrConfigInvalid, MaxNdim, cfg.Ndim)
	}

	if cfg.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1 (got %d)", ErrConfigInvalid, cfg.Count)
	}

	err := cfg.Slice.Validate()
	if err != nil {
		return fmt.Errorf("%w: slice: %w", ErrConfigInvalid, err)
	}

	d, err := h5type.Parse(cfg.Type)
	if err != nil {
		return fmt.Errorf("%w: type: %w", ErrConfigInvalid, err)
	}

	cfg.Descriptor = d

	return nil
}

// loadProject loads .h5gen.json from workDir, or the explicit config file
// when configPath is set. Returns the path if a file was loaded.
func loadProject(workDir, configPath string) (fileConfig, string, error) {
	cfgFile := filepath.Join(workDir, FileName)
	mustExist := false

	if configPath != "" {
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return fileConfig{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	}

	fileCfg, loaded, err := loadFile(cfgFile, mustExist)
	if err != nil || !loaded {
		return fileConfig{}, "", err
	}

	return fileCfg, cfgFile, nil
}

// loadFile loads a config file. If mustExist is false, a missing file
// returns loaded == false.
func loadFile(path string, mustExist bool) (fileConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return fileConfig{}, false, nil
		}

		return fileConfig{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	cfg, parseErr := parse(data)
	if parseErr != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, true, nil
}

func parse(data []byte) (fileConfig, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg fileConfig

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return cfg, nil
}

func merge(base Config, overlay fileConfig) Config {
	if overlay.Seed != nil {
		base.Seed = *overlay.Seed
	}

	if overlay.Ndim != nil {
		base.Ndim = *overlay.Ndim
	}

	if overlay.Count != nil {
		base.Count = *overlay.Count
	}

	if overlay.Type != nil {
		base.Type = *overlay.Type
	}

	if r := overlay.Slice; r != nil {
		setRate(&base.Slice.IndexRate, r.IndexRate)
		setRate(&base.Slice.OpenEndRate, r.OpenEndRate)
		setRate(&base.Slice.WellFormedEndRate, r.WellFormedEndRate)
		setRate(&base.Slice.UnitStepRate, r.UnitStepRate)
	}

	return base
}

func setRate(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
