package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> [value]",
		Short: "Store a secret under name",
		Long:  "Store a secret, replacing any existing one. If value is omitted it is read from the terminal or stdin.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			pw, err := masterPassword(false)
			if err != nil {
				return err
			}

			var value string
			if len(args) == 2 {
				value = args[1]
			} else if value, err = secretValue(); err != nil {
				return err
			}

			replaced, err := wire.Vault.Set(pw, name, value)
			if err != nil {
				return err
			}
			if replaced {
				fmt.Fprintf(cmd.OutOrStdout(), "Secret %q replaced\n", name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Secret %q stored\n", name)
			return nil
		},
	}
}
