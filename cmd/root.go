package cmd

import (
	"fmt"

	"github.com/PolarWolf314/sealpost/internal/configs"
	logger "github.com/PolarWolf314/sealpost/internal/logging"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose    bool
	debug      bool
	configPath string
	Logger     logger.Logger

	RootCmd = &cobra.Command{
		Use:   "sealpost",
		Short: "Encrypt the body of secret blog posts",
		Long: `sealpost encrypts the body of a post whose front matter contains
secret: true, so it can be published and decrypted in the browser with a password.

The body is replaced by a single base64 blob:

  base64(salt[16] || iv[12] || ciphertext || tag[16])

derived with PBKDF2-SHA256 (100,000 iterations) and sealed with AES-256-GCM.

Passwords are taken, in order, from:
  - a password: field in the front matter (removed from the file)
  - the environment variable named by password_env (default SEALPOST_PASSWORD)
  - an interactive prompt, or stdin with --password-stdin`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewFigure("sealpost", "standard", true)
			fmt.Fprint(cmd.OutOrStdout(), color.GreenString(banner.String()))
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'sealpost --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default $XDG_CONFIG_HOME/sealpost/config.toml)")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	cmd, err := RootCmd.ExecuteC()
	if err != nil {
		reportError(cmd.ErrOrStderr(), err)
	}
	return err
}

// loadConfig loads the settings named by --config.
func loadConfig() (*configs.Config, error) {
	cfg, err := configs.Load(configPath)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Loaded config: password_env=%q strict_secret=%t audit_log=%q", cfg.PasswordEnv, cfg.StrictSecret, cfg.AuditLog)
	return cfg, nil
}

// ResetGlobalState resets flags and globals to their defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	configPath = ""
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetConfigCommandState()
	resetFlags(RootCmd)
}

// resetFlags restores every flag in the tree to its default so one test's
// flags do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}
