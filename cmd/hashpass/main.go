package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/MrEthical07/hashpass"
)

var errMismatch = errors.New("passphrase does not match credential")

func main() {
	log.SetFlags(0)
	log.SetPrefix("hashpass: ")

	err := run(os.Args[1:], os.Stdin, os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, errMismatch):
		fmt.Fprintln(os.Stdout, "mismatch")
		os.Exit(1)
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		log.Print(err)
		os.Exit(2)
	}
}

// run reads one passphrase line from stdin. Without -verify it prints a new
// credential; with -verify it prints ok or returns errMismatch.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("hashpass", flag.ContinueOnError)
	credential := fs.String("verify", "", "credential to check the passphrase against")
	if err := fs.Parse(args); err != nil {
		return err
	}

	passphrase, err := readPassphrase(stdin)
	if err != nil {
		return err
	}

	h, err := hashpass.New(hashpass.Config{})
	if err != nil {
		return err
	}

	if *credential != "" {
		ok, err := h.Verify(passphrase, *credential)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if !ok {
			return errMismatch
		}
		_, err = fmt.Fprintln(stdout, "ok")
		return err
	}

	encoded, err := h.Hash(passphrase)
	if err != nil {
		return fmt.Errorf("hash: %w", err)
	}
	_, err = fmt.Fprintln(stdout, encoded)
	return err
}

func readPassphrase(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
