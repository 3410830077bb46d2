// Package configs manages the sealpost settings file.
//
// Settings are stored in TOML at $XDG_CONFIG_HOME/sealpost/config.toml
// (os.UserConfigDir on other platforms), or at the path given with --config:
//
//	password_env = "SEALPOST_PASSWORD"
//	strict_secret = true
//	audit_log = "~/.config/sealpost/audit.jsonl"
//
// A missing file yields Default(). Unknown keys are rejected so typos do not
// silently fall back to defaults.
//
// The key derivation and cipher parameters are protocol constants and
// cannot be configured here.
package configs
