package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

// ConfigFile marks a romcalc workspace root.
const ConfigFile = "romcalc.yaml"

// LoadConfig loads romcalc.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	p := y.Romcalc.Paths
	setString(&cfg.Paths.Input, p.Input)
	setString(&cfg.Paths.Output, p.Output)
	setString(&cfg.Paths.ProcessLog, p.ProcessLog)
	setString(&cfg.Paths.RunsDir, p.RunsDir)

	if y.Romcalc.Trace.Enabled != nil {
		cfg.Trace.Enabled = *y.Romcalc.Trace.Enabled
	}
	if y.Romcalc.Runs.Save != nil {
		cfg.Runs.Save = *y.Romcalc.Runs.Save
	}
	if y.Romcalc.Runs.Index != nil {
		cfg.Runs.Index = *y.Romcalc.Runs.Index
	}

	return cfg, nil
}

type yamlConfig struct {
	Romcalc struct {
		Paths struct {
			Input      string `yaml:"input"`
			Output     string `yaml:"output"`
			ProcessLog string `yaml:"process_log"`
			RunsDir    string `yaml:"runs_dir"`
		} `yaml:"paths"`

		Trace struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"trace"`

		Runs struct {
			Save  *bool `yaml:"save"`
			Index *bool `yaml:"index"`
		} `yaml:"runs"`
	} `yaml:"romcalc"`
}

// envOverrides is the environment layer applied after romcalc.yaml.
type envOverrides struct {
	Input      string `env:"ROMCALC_INPUT"`
	Output     string `env:"ROMCALC_OUTPUT"`
	ProcessLog string `env:"ROMCALC_PROCESS_LOG"`
	RunsDir    string `env:"ROMCALC_RUNS_DIR"`
	Trace      *bool  `env:"ROMCALC_TRACE"`
}

// ApplyEnv overlays ROMCALC_* environment variables on cfg. Unset variables
// leave the corresponding field alone.
func ApplyEnv(cfg domain.Config) (domain.Config, error) {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.applyenv",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse env: %w", err),
		}
	}

	setString(&cfg.Paths.Input, o.Input)
	setString(&cfg.Paths.Output, o.Output)
	setString(&cfg.Paths.ProcessLog, o.ProcessLog)
	setString(&cfg.Paths.RunsDir, o.RunsDir)
	if o.Trace != nil {
		cfg.Trace.Enabled = *o.Trace
	}
	return cfg, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
