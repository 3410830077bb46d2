package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/sealpost/internal/configs"
	"github.com/PolarWolf314/sealpost/internal/secrets"
	"github.com/PolarWolf314/sealpost/internal/ui"

	"github.com/spf13/cobra"
)

var configInitForce bool

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sealpost configuration",
	Long: `Provides commands for managing the sealpost settings file.

Examples:
  # Write a config file with the default settings
  sealpost config init

  # Show the settings in effect
  sealpost config show`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}

		Logger.Debugf("Writing default config to %s (force=%t)", path, configInitForce)
		if _, err := configs.Init(path, configInitForce); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Succeeded("Config written to "+ui.Path.Sprint(path)))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Shows the settings in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}

		cfg, err := configs.Load(path)
		if err != nil {
			return err
		}

		source := ui.Muted.Sprint("defaults, file not found")
		if _, err := os.Stat(path); err == nil {
			source = ui.Muted.Sprint("loaded")
		}

		auditLog := cfg.AuditLog
		if auditLog == "" {
			auditLog = ui.Muted.Sprint("disabled")
		}
		passwordEnv := cfg.PasswordEnv
		if passwordEnv == "" {
			passwordEnv = ui.Muted.Sprint("disabled")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file:    %s %s\n", ui.Path.Sprint(path), source)
		fmt.Fprintf(out, "password_env:   %s\n", passwordEnv)
		fmt.Fprintf(out, "strict_secret:  %t\n", cfg.StrictSecret)
		fmt.Fprintf(out, "audit_log:      %s\n", auditLog)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Protocol (fixed):")
		fmt.Fprintf(out, "  key derivation: PBKDF2-SHA256, %d iterations, %d-byte key\n", secrets.Iterations, secrets.KeySize)
		fmt.Fprintf(out, "  cipher:         AES-256-GCM, %d-byte nonce, %d-byte tag\n", secrets.NonceSize, secrets.TagSize)
		fmt.Fprintf(out, "  salt:           %d bytes\n", secrets.SaltSize)
		return nil
	},
}

func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return configs.DefaultPath()
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

func resetConfigCommandState() {
	configInitForce = false
}
