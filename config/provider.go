package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/vitakit/sysmodule"
	"github.com/vitakit/sysmodule/errors"
)

const (
	// AppName is the directory name under the platform config root.
	AppName = "vitakit"
	// ConfigFileName is the name of the config file with extension.
	ConfigFileName = "config.yml"
)

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider backed by YAML files.
func NewProvider() Provider {
	return &fileProvider{}
}

// ConfigDir returns the vitakit configuration directory, following
// $XDG_CONFIG_HOME with a ~/.config fallback.
func ConfigDir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

// Load reads configuration from the requested source. A missing config
// file is not an error; defaults apply.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	v.SetConfigType("yaml")

	defaults := Default()
	v.SetDefault("modules-mode", string(defaults.ModulesMode))
	v.SetDefault("lle-modules", defaults.LLEModules)

	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.IO(errors.PhaseConfig, "read config file "+path, err)
		}
		err = v.ReadConfig(f)
		f.Close()
		if err != nil {
			return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse config file "+path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "decode config")
	}

	if !cfg.ModulesMode.Valid() {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Path("modules-mode").
			Value(string(cfg.ModulesMode)).
			Detail("unknown modules mode (want automatic, manual, or auto+manual)").
			Build()
	}

	return &cfg, nil
}

// resolvePath picks the config file to read. Empty result means no file
// exists and defaults should be used.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", errors.NotFound(errors.PhaseConfig, "config file", opts.ConfigFilePath)
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		dir, err = ConfigDir()
		if err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, ConfigFileName)
	if fileExists(path) {
		return path, nil
	}

	// Also check current directory
	if fileExists(ConfigFileName) {
		return ConfigFileName, nil
	}

	return "", nil
}

// Save writes cfg as YAML to path, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.IO(errors.PhaseConfig, "create config directory", err)
	}

	if err := os.WriteFile(path, []byte(GenerateYAML(cfg)), 0o644); err != nil {
		return errors.IO(errors.PhaseConfig, "write config file "+path, err)
	}

	return nil
}

// GenerateYAML renders a YAML representation of the configuration.
func GenerateYAML(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("# vitakit configuration\n")

	sb.WriteString(fmt.Sprintf("modules-mode: %q\n", string(cfg.CurrentMode())))

	if len(cfg.LLEModules) == 0 {
		sb.WriteString("lle-modules: []\n")
		return sb.String()
	}

	sb.WriteString("lle-modules:\n")
	for _, path := range cfg.LLEModules {
		sb.WriteString(fmt.Sprintf("  - %q\n", path))
	}

	return sb.String()
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

var _ sysmodule.ConfigSource = (*Config)(nil)
