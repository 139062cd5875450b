package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config is the resolved clarity configuration. The serialized fields
// come from config files; the rest is computed during resolution.
type Config struct {
	PlanFile string `json:"plan_file"`
	Format   string `json:"format,omitempty"`

	// EffectiveCwd is the absolute working directory, from --cwd or
	// os.Getwd. PlanFileAbs is PlanFile resolved against it.
	EffectiveCwd string `json:"-"`
	PlanFileAbs  string `json:"-"`

	// Sources records which config files actually contributed, for
	// print-config diagnostics.
	Sources ConfigSources `json:"-"`
}

// ConfigSources names the config files that were loaded, if any.
type ConfigSources struct {
	Global  string
	Project string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		PlanFile: "plan.json",
		Format:   "terminal",
	}
}

// ConfigFileName is the project config file looked up in the working
// directory.
const ConfigFileName = ".clarity.json"

// LoadConfigInput carries the resolution inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride  string            // --cwd value; empty means os.Getwd
	ConfigPath       string            // --config value; empty means the default project file
	PlanFileOverride string            // --plan value; empty means no override
	Env              map[string]string // process environment
}

// LoadConfig resolves the configuration. Later layers win:
// defaults, then the global user config, then the project config (or an
// explicit --config file, which must exist), then CLI flag overrides.
// Relative plan paths resolve against the effective working directory.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}

		workDir = wd
	}

	cfg := DefaultConfig()

	if path := globalConfigPath(input.Env); path != "" {
		layer, loaded, err := readConfigFile(path, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg = overlay(cfg, layer)
			cfg.Sources.Global = path
		}
	}

	projectPath, mustExist := projectConfigPath(workDir, input.ConfigPath)

	if mustExist {
		if _, err := os.Stat(projectPath); err != nil {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, input.ConfigPath)
		}
	}

	layer, loaded, err := readConfigFile(projectPath, mustExist)
	if err != nil {
		return Config{}, err
	}

	if loaded {
		cfg = overlay(cfg, layer)
		cfg.Sources.Project = projectPath
	}

	if input.PlanFileOverride != "" {
		cfg.PlanFile = input.PlanFileOverride
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = workDir

	if filepath.IsAbs(cfg.PlanFile) {
		cfg.PlanFileAbs = cfg.PlanFile
	} else {
		cfg.PlanFileAbs = filepath.Join(workDir, cfg.PlanFile)
	}

	return cfg, nil
}

// globalConfigPath returns $XDG_CONFIG_HOME/clarity/config.json, or the
// ~/.config fallback, or empty when neither variable is set.
func globalConfigPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "clarity", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "clarity", "config.json")
	}

	return ""
}

// projectConfigPath picks the project-level config file: the explicit
// --config path when given (which must exist), otherwise the optional
// .clarity.json in the working directory.
func projectConfigPath(workDir, configPath string) (path string, mustExist bool) {
	if configPath == "" {
		return filepath.Join(workDir, ConfigFileName), false
	}

	if filepath.IsAbs(configPath) {
		return configPath, true
	}

	return filepath.Join(workDir, configPath), true
}

// readConfigFile reads and decodes one config layer. A missing optional
// file reports loaded=false without error.
func readConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	cfg, err := decodeConfig(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

// decodeConfig parses a JSONC config document. An explicitly empty
// plan_file is rejected here rather than silently falling back to the
// default, because writing "" is always a mistake.
func decodeConfig(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	if val, exists := raw["plan_file"]; exists {
		if str, ok := val.(string); ok && str == "" {
			return Config{}, ErrPlanFileEmpty
		}
	}

	return cfg, nil
}

// overlay applies the non-empty fields of layer on top of base.
func overlay(base, layer Config) Config {
	if layer.PlanFile != "" {
		base.PlanFile = layer.PlanFile
	}

	if layer.Format != "" {
		base.Format = layer.Format
	}

	return base
}

func validateConfig(cfg Config) error {
	if cfg.PlanFile == "" {
		return ErrPlanFileEmpty
	}

	switch cfg.Format {
	case "terminal", "json", "markdown":
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, cfg.Format)
	}
}

// FormatConfig renders the serializable config fields as indented JSON.
func FormatConfig(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	return string(data), nil
}
