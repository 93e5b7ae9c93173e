package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"people-directory/internal/platform/password"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print the argon2id digest of a password (reads stdin if no argument)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pw := ""
		if len(args) == 1 {
			pw = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.Wrap(err, "read password")
			}
			pw = strings.TrimRight(line, "\r\n")
		}
		if pw == "" {
			return errors.New("empty password")
		}

		digest, err := password.NewHasher(password.DefaultParams()).Hash(pw)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), digest)
		return err
	},
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}
