package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"passkeep/internal/app"
	"passkeep/internal/crypto"
	"passkeep/internal/domain"
	"passkeep/internal/logging"
)

func TestNewWire_Defaults(t *testing.T) {
	home := filepath.Join(t.TempDir(), "state")
	w, err := app.NewWire(app.Config{Home: home, Log: logging.Logger{W: &bytes.Buffer{}}})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	defer w.Close()

	if w.Ledger.Path() != filepath.Join(home, "ledger.json") {
		t.Errorf("ledger = %q", w.Ledger.Path())
	}
	if w.Audit.Path() != filepath.Join(home, "audit.log") {
		t.Errorf("audit = %q", w.Audit.Path())
	}
	if w.Settings.KDF != crypto.DefaultKDFParams() {
		t.Errorf("kdf = %s", w.Settings.KDF)
	}
	if info, err := os.Stat(home); err != nil || !info.IsDir() {
		t.Fatalf("home not created: %v", err)
	}
}

func TestNewWire_FlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := "vault_path: " + filepath.Join(dir, "from-file.json") + "\nkdf:\n  algorithm: argon2id\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := app.NewWire(app.Config{
		Home:       dir,
		ConfigPath: cfgPath,
		VaultPath:  filepath.Join(dir, "from-flag.json"),
		KDF:        domain.KDFScrypt,
	})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	defer w.Close()

	if w.Vaults.Path() != filepath.Join(dir, "from-flag.json") {
		t.Errorf("vault = %q", w.Vaults.Path())
	}
	want, _ := crypto.DefaultParamsFor(domain.KDFScrypt)
	if w.Settings.KDF != want {
		t.Errorf("kdf = %s, want %s", w.Settings.KDF, want)
	}
}

func TestNewWire_VaultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w, err := app.NewWire(app.Config{Home: dir, VaultPath: filepath.Join(dir, "vault.json")})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	defer w.Close()

	const pw = "Correct-Horse-42-Battery"
	if _, err := w.Vault.Create(pw); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Vault.Set(pw, "example.com", "hunter2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, found, err := w.Vault.Get(pw, "example.com")
	if err != nil || !found || v != "hunter2" {
		t.Fatalf("Get = %q, %v, %v", v, found, err)
	}
}
