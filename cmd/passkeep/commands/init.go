package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passkeep/internal/services/vault"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty vault protected by a master password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := masterPassword(true)
			if err != nil {
				return err
			}
			if err := vault.CheckPassphrase(pw); err != nil {
				log.Warnf("%v", err)
			}
			log.Infof("deriving master key with %s", wire.Settings.KDF)
			id, err := wire.Vault.Create(pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Vault created at %s\nStore ID: %s\n", wire.Settings.VaultPath, id)
			return nil
		},
	}
}
