package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flarebyte/anubis-hooks/internal/engine"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no config flag is given.
const DefaultPath = "anubis.yaml"

// CurrentConfigVersion is the config contract this build understands.
const CurrentConfigVersion = "1"

var supportedConfigVersions = []string{CurrentConfigVersion}

const (
	defaultTimeoutMs       = 60000
	defaultTermGraceMs     = 2000
	defaultCaptureMaxBytes = 1048576
)

// LoadError is a fatal configuration problem. It carries the exit status
// shared by all load-time failures.
type LoadError struct {
	msg string
}

func (e *LoadError) Error() string { return e.msg }
func (e *LoadError) ExitCode() int { return 3 }

func loadErrorf(format string, args ...any) error {
	return &LoadError{msg: fmt.Sprintf(format, args...)}
}

// Config mirrors anubis.yaml.
type Config struct {
	ConfigVersion string            `yaml:"configVersion"`
	EnvFile       string            `yaml:"envFile"`
	Workers       int               `yaml:"workers"`
	Exclude       []string          `yaml:"exclude"`
	Defaults      Defaults          `yaml:"defaults"`
	Output        Output            `yaml:"output"`
	Jobs          []JobSpec         `yaml:"jobs"`
	Env           map[string]string `yaml:"env"`
}

// Defaults are run-wide execution limits, overridable per job where a job
// field exists.
type Defaults struct {
	TimeoutMs       int `yaml:"timeoutMs"`
	TermGraceMs     int `yaml:"termGraceMs"`
	CaptureMaxBytes int `yaml:"captureMaxBytes"`
}

// Output controls where and how the run report is written.
type Output struct {
	Out    string `yaml:"out"`
	Format string `yaml:"format"`
	Pretty bool   `yaml:"pretty"`
}

// JobSpec is one job entry as written in YAML.
type JobSpec struct {
	Name      string            `yaml:"name"`
	Glob      StringList        `yaml:"glob"`
	Run       []string          `yaml:"run"`
	Rank      int               `yaml:"rank"`
	Group     string            `yaml:"group"`
	Mutating  bool              `yaml:"mutating"`
	AlwaysRun bool              `yaml:"alwaysRun"`
	NoFiles   bool              `yaml:"noFiles"`
	TimeoutMs int               `yaml:"timeoutMs"`
	Env       map[string]string `yaml:"env"`
	Needs     StringList        `yaml:"needs"`
	When      string            `yaml:"when"`
}

// StringList accepts either a single scalar or a sequence in YAML.
type StringList []string

func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var one string
		if err := node.Decode(&one); err != nil {
			return err
		}
		*s = StringList{one}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*s = StringList(many)
		return nil
	default:
		return fmt.Errorf("expected a string or a list of strings")
	}
}

// Load reads, schema-checks and decodes the config file.
func Load(path string) (Config, error) {
	if ext := filepath.Ext(path); ext != ".yaml" && ext != ".yml" {
		return Config{}, loadErrorf("unsupported config format: expected .yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, loadErrorf("failed to read config: %v", err)
	}
	return Parse(path, data)
}

// Parse validates raw config bytes against the schema and decodes them.
// The schema catches unknown fields and type mismatches before yaml decode
// ever sees them.
func Parse(path string, data []byte) (Config, error) {
	if err := validateSchema(path, data); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, loadErrorf("invalid config: %v", err)
	}
	if !isSupportedConfigVersion(cfg.ConfigVersion) {
		return Config{}, loadErrorf("unsupported configVersion %q (supported: %s)",
			cfg.ConfigVersion, strings.Join(supportedConfigVersions, ", "))
	}
	cfg.applyDefaults()
	return cfg, nil
}

func isSupportedConfigVersion(v string) bool {
	for _, s := range supportedConfigVersions {
		if v == s {
			return true
		}
	}
	return false
}

func (c *Config) applyDefaults() {
	if c.Defaults.TimeoutMs == 0 {
		c.Defaults.TimeoutMs = defaultTimeoutMs
	}
	if c.Defaults.TermGraceMs == 0 {
		c.Defaults.TermGraceMs = defaultTermGraceMs
	}
	if c.Defaults.CaptureMaxBytes == 0 {
		c.Defaults.CaptureMaxBytes = defaultCaptureMaxBytes
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// JobList converts the parsed jobs into engine jobs, applying run-wide
// defaults and the top-level env overlay.
func (c Config) JobList() []engine.Job {
	jobs := make([]engine.Job, 0, len(c.Jobs))
	for _, js := range c.Jobs {
		j := engine.Job{
			Name:      js.Name,
			Globs:     []string(js.Glob),
			Run:       js.Run,
			NoFiles:   js.NoFiles,
			Rank:      js.Rank,
			Group:     js.Group,
			Mutating:  js.Mutating,
			AlwaysRun: js.AlwaysRun,
			Env:       mergeEnvMaps(c.Env, js.Env),
			Needs:     []string(js.Needs),
			When:      js.When,
		}
		ms := js.TimeoutMs
		if ms == 0 {
			ms = c.Defaults.TimeoutMs
		}
		j.Timeout = time.Duration(ms) * time.Millisecond
		jobs = append(jobs, j)
	}
	return jobs
}

// TermGrace returns the configured SIGTERM grace period.
func (c Config) TermGrace() time.Duration {
	return time.Duration(c.Defaults.TermGraceMs) * time.Millisecond
}

func mergeEnvMaps(base, overlay map[string]string) map[string]string {
	if len(base) == 0 {
		return overlay
	}
	m := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		m[k] = v
	}
	for k, v := range overlay {
		m[k] = v
	}
	return m
}
