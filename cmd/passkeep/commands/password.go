package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const passwordEnv = "PASSKEEP_PASSWORD"

var errNoPassword = errors.New("master password required (-p, $" + passwordEnv + " or a terminal)")

var stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

// masterPassword returns the password from the flag, the environment or a
// no-echo prompt, in that order. confirm asks twice when prompting.
func masterPassword(confirm bool) (string, error) {
	if password != "" {
		return password, nil
	}
	if p, ok := os.LookupEnv(passwordEnv); ok && p != "" {
		return p, nil
	}
	if !stdinIsTerminal() {
		return "", errNoPassword
	}

	p, err := prompt("Master password: ")
	if err != nil {
		return "", err
	}
	if confirm {
		again, err := prompt("Repeat password: ")
		if err != nil {
			return "", err
		}
		if again != p {
			return "", errors.New("passwords do not match")
		}
	}
	return p, nil
}

// secretValue reads a value to store: from the terminal without echo, or
// all of stdin with the trailing newline trimmed when piped.
func secretValue() (string, error) {
	if stdinIsTerminal() {
		return prompt("Secret value: ")
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func prompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(b), nil
}
