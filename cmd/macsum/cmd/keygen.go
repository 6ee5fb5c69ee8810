package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
	"massnet.org/macsum/fileio"
	"massnet.org/macsum/logging"
	"massnet.org/macsum/sha256"
)

var (
	keygenFlagOut        string
	keygenFlagPassphrase string
)

var keygenCmd = &cobra.Command{
	Use:   "keygen [--out <keyfile>] [--passphrase <passphrase>]",
	Short: "Derive a MAC key from a passphrase",
	Long: `Write the SHA-256 digest of a passphrase as a hex encoded key file that
can be passed to "mac --key". The passphrase is read from the terminal
without echo unless --passphrase is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeygen(keygenFlagOut, keygenFlagPassphrase, promptPassphrase, cmd.OutOrStdout())
	},
}

func promptPassphrase() ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return nil, fmt.Errorf("standard input is not a terminal")
	}
	fmt.Fprint(os.Stderr, "Enter passphrase: ")
	pass, err := terminal.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	return pass, err
}

func runKeygen(out, passphrase string, prompt func() ([]byte, error), stdout io.Writer) error {
	if out == "" {
		out = fileio.Stdio
	}
	pass := []byte(passphrase)
	if len(pass) == 0 {
		var err error
		if pass, err = prompt(); err != nil {
			return fileio.InputError("read passphrase: %v", err)
		}
	}
	if len(pass) == 0 {
		return invalidParameter("empty passphrase")
	}

	key := sha256.SumBytes(pass)
	if err := fileio.WriteDigestFile(out, key, stdout); err != nil {
		return err
	}
	logging.VPrint(logging.INFO, "key generated", logging.LogFormat{"out": out})
	return nil
}
