package commands

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"passkeep/internal/app"
	"passkeep/internal/domain"
	"passkeep/internal/logging"
	"passkeep/internal/services/vault"
)

var (
	home       string
	configPath string
	vaultPath  string
	ledgerPath string
	kdfName    string
	password   string
	noVerify   bool
	verbose    bool
	debug      bool

	log  logging.Logger
	wire *app.Wire
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	log = logging.Logger{W: stderr}
	wire = nil

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if wire != nil {
		if cerr := wire.Close(); cerr != nil {
			log.Warnf("closing audit log: %v", cerr)
		}
	}
	if err != nil {
		log.Errorf("%s", describe(err))
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "passkeep",
		Short:         "Password-protected credential keychain",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = logging.Logger{Verbose: verbose, Debug: debug, W: cmd.ErrOrStderr()}
			w, err := app.NewWire(app.Config{
				Home:       home,
				ConfigPath: configPath,
				VaultPath:  vaultPath,
				LedgerPath: ledgerPath,
				KDF:        domain.KDFAlgorithm(kdfName),
				NoVerify:   noVerify,
				Log:        log,
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir for config, ledger and audit log (default ~/.passkeep)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&vaultPath, "vault", "", "vault file (default ./vault.json)")
	root.PersistentFlags().StringVar(&ledgerPath, "ledger", "", "checksum ledger file (default <home>/ledger.json)")
	root.PersistentFlags().StringVar(&kdfName, "kdf", "", "key derivation for init: pbkdf2-sha256, argon2id or scrypt")
	root.PersistentFlags().StringVarP(&password, "password", "p", "", "master password (default $"+passwordEnv+" or prompt)")
	root.PersistentFlags().BoolVar(&noVerify, "no-verify", false, "load the vault even if the ledger has no checksum for it")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress messages")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "print debug messages")

	root.AddCommand(initCmd(), setCmd(), getCmd(), rmCmd(), verifyCmd(), infoCmd())
	return root
}

// describe turns the errors a user can act on into advice.
func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrIntegrity):
		return "vault does not match its recorded checksum; it was modified or rolled back (" + err.Error() + ")"
	case errors.Is(err, domain.ErrAuthentication):
		return "wrong password, or the vault was tampered with"
	case errors.Is(err, domain.ErrFormat):
		return "vault file is malformed (" + err.Error() + ")"
	case errors.Is(err, vault.ErrUnverified):
		return err.Error() + "; rerun with --no-verify to load it anyway"
	case errors.Is(err, vault.ErrNoVault):
		return "no vault at " + wire.Settings.VaultPath + "; create one with 'passkeep init'"
	default:
		return err.Error()
	}
}
