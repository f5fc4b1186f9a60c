package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the vault without unlocking it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := wire.Vault.Inspect()
			if err != nil {
				return err
			}
			verified := "no (ledger has no checksum for this vault)"
			if info.Verified {
				verified = "yes"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Vault:\t%s\n", wire.Settings.VaultPath)
			fmt.Fprintf(w, "Store ID:\t%s\n", info.ID)
			fmt.Fprintf(w, "Entries:\t%d\n", info.Entries)
			fmt.Fprintf(w, "KDF:\t%s\n", info.KDF)
			fmt.Fprintf(w, "Checksum:\t%s\n", info.Checksum)
			fmt.Fprintf(w, "Verified:\t%s\n", verified)
			fmt.Fprintf(w, "Ledger:\t%s\n", wire.Settings.LedgerPath)
			return w.Flush()
		},
	}
}
