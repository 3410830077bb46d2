package cmd

import (
	"fmt"

	"github.com/PolarWolf314/sealpost/internal/workflows"

	"github.com/spf13/cobra"
)

var decryptPasswordStdin bool

var decryptCmd = &cobra.Command{
	Use:   "decrypt <post.md>",
	Short: "Prints the decrypted contents of an encrypted post",
	Long: `Decrypts a post encrypted by sealpost and prints it to stdout.

The file itself is never modified. Decryption follows the same protocol as the
browser, so a successful decrypt confirms readers can open the post.`,
	Example: `  sealpost decrypt _posts/2026-02-14-secret-test.md
  echo "hunter2" | sealpost decrypt --password-stdin _posts/diary.md > /tmp/diary.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		result, err := workflows.Decrypt(cmd.Context(), workflows.DecryptOptions{
			Path:     args[0],
			Password: passwordSources(cmd, cfg, decryptPasswordStdin, false),
		})
		if err != nil {
			return err
		}

		Logger.Debugf("Decrypted %d-byte body from %s", len(result.Body), result.Path)
		fmt.Fprint(cmd.OutOrStdout(), result.Text())
		return nil
	},
}

func init() {
	decryptCmd.Flags().BoolVar(&decryptPasswordStdin, "password-stdin", false, "read the password from the first line of stdin")
}

func resetDecryptCommandState() {
	decryptPasswordStdin = false
}
