package cmd

import (
	"fmt"

	"github.com/PolarWolf314/sealpost/internal/audit"
	"github.com/PolarWolf314/sealpost/internal/configs"
	"github.com/PolarWolf314/sealpost/internal/password"
	"github.com/PolarWolf314/sealpost/internal/ui"
	"github.com/PolarWolf314/sealpost/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	encryptDryRun        bool
	encryptPasswordStdin bool
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt <post.md>",
	Short: "Encrypts the body of a post marked secret: true, in place",
	Long: `Encrypts the body of a post in place.

The post must have secret: true in its front matter and a non-empty body.
A password: field in the front matter is used and removed; otherwise the
password comes from the configured environment variable or a prompt that
asks twice. The file is only overwritten once encryption has succeeded.`,
	Example: `  sealpost encrypt _posts/2026-02-14-secret-test.md
  echo "hunter2" | sealpost encrypt --password-stdin _posts/diary.md
  sealpost encrypt --dry-run _posts/diary.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		start, finish := newSpinner("Encrypting post...", cmd.OutOrStdout())
		defer finish("")

		opts := workflows.EncryptOptions{
			Path:         args[0],
			Password:     passwordSources(cmd, cfg, encryptPasswordStdin, true),
			StrictSecret: cfg.StrictSecret,
			DryRun:       encryptDryRun,
			Audit:        audit.Trail{Path: cfg.AuditLog},
			BeforeEncrypt: func(source string) {
				Logger.Debugf("Password obtained from %s", source)
				if source == password.FromHeader {
					fmt.Fprintln(cmd.OutOrStdout(), "Using password from front matter.")
				}
				start()
			},
		}

		Logger.Debugf("Encrypting %s (dry-run=%t)", opts.Path, opts.DryRun)
		result, err := workflows.Encrypt(cmd.Context(), opts)
		if err != nil {
			finish("")
			return err
		}

		if result.AuditErr != nil {
			Logger.WarnfAlways("Failed to write audit log %s: %v", cfg.AuditLog, result.AuditErr)
		}

		if result.DryRun {
			finish(ui.Succeeded("Would encrypt: "+ui.Path.Sprint(result.Path)) + " " +
				ui.Muted.Sprintf("dry run, %d bytes, password from %s", result.BodyBytes, result.PasswordSource))
			return nil
		}

		Logger.Infof("Wrote %d-byte blob for %d-byte body", result.BlobBytes, result.BodyBytes)
		finish(ui.Succeeded("Encrypted: " + ui.Path.Sprint(result.Path)))
		return nil
	},
}

// passwordSources builds the fallback used when the front matter carries no
// password: the configured environment variable, then stdin or a prompt.
func passwordSources(cmd *cobra.Command, cfg *configs.Config, fromStdin, confirm bool) password.Source {
	chain := password.Chain{password.EnvSource{Name: cfg.PasswordEnv}}
	if fromStdin {
		return append(chain, password.ReaderSource{R: cmd.InOrStdin()})
	}

	prompt := password.NewPromptSource()
	prompt.Confirm = confirm
	return append(chain, prompt)
}

func init() {
	encryptCmd.Flags().BoolVar(&encryptDryRun, "dry-run", false, "check the post and password without writing anything")
	encryptCmd.Flags().BoolVar(&encryptPasswordStdin, "password-stdin", false, "read the password from the first line of stdin")
}

func resetEncryptCommandState() {
	encryptDryRun = false
	encryptPasswordStdin = false
}
