package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Short:   "Remove the secret stored under name",
		Aliases: []string{"remove", "delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := masterPassword(false)
			if err != nil {
				return err
			}
			removed, err := wire.Vault.Remove(pw, args[0])
			if err != nil {
				return err
			}
			if !removed {
				log.Infof("no secret named %q", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Secret %q removed\n", args[0])
			return nil
		},
	}
}
