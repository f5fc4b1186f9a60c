package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print the secret stored under name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := masterPassword(false)
			if err != nil {
				return err
			}
			value, found, err := wire.Vault.Get(pw, args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no secret named %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
