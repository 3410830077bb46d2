package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/sealpost/internal/errors"
)

const (
	// AppName names the config directory.
	AppName = "sealpost"

	// DefaultPasswordEnv is consulted when the front matter has no password.
	DefaultPasswordEnv = "SEALPOST_PASSWORD"
)

// Config holds user settings. The encryption protocol is deliberately absent:
// the decrypting side must use the same constants.
type Config struct {
	// PasswordEnv names the environment variable checked before prompting.
	// Empty disables the lookup.
	PasswordEnv string `toml:"password_env"`

	// StrictSecret requires `secret: true` to be a real YAML boolean field.
	// When false any occurrence of the text `secret: true` in the front
	// matter counts.
	StrictSecret bool `toml:"strict_secret"`

	// AuditLog is the JSON Lines file recording encryptions. Empty disables it.
	AuditLog string `toml:"audit_log"`
}

// ConfigDir returns the sealpost directory under the user's config dir.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns the settings used when no config file exists. The audit
// log lives next to the config file at configDir.
func Default(configDir string) *Config {
	cfg := &Config{
		PasswordEnv:  DefaultPasswordEnv,
		StrictSecret: true,
	}
	if configDir != "" {
		cfg.AuditLog = filepath.Join(configDir, "audit.jsonl")
	}
	return cfg
}

// Load reads the config at path over the defaults. A missing file is not an
// error. An empty path means DefaultPath().
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default(filepath.Dir(path))

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	meta, err := LoadTOML(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("failed to load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	cfg.AuditLog = expandHome(cfg.AuditLog)
	return cfg, nil
}

// Init writes the default config to path. It refuses to overwrite an
// existing file unless force is set.
func Init(path string, force bool) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !force {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrConfigExists, path)
	}

	cfg := Default(filepath.Dir(path))
	if err := SaveTOML(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config %s: %w", path, err)
	}
	return cfg, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
