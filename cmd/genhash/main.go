// Command genhash prints a bcrypt hash for ADMIN_PASSWORD_HASH.
//
//	genhash [-cost 10] <password>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrymomot/admingate/core/credential"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("genhash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cost := fs.Int("cost", credential.DefaultCost, "bcrypt cost")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: genhash [-cost N] <password>")
		fmt.Fprintln(stderr, "Example: genhash mySecurePassword123")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	password := fs.Arg(0)
	if password == "" {
		fs.Usage()
		return 1
	}

	failure := color.New(color.FgRed)
	success := color.New(color.FgGreen)
	warning := color.New(color.FgYellow)

	hash, err := credential.Hash(password, *cost)
	if err != nil {
		switch {
		case errors.Is(err, credential.ErrPasswordTooShort):
			failure.Fprintf(stderr, "Password must be at least %d characters long\n", credential.MinPasswordLength)
		default:
			failure.Fprintf(stderr, "Failed to hash password: %v\n", err)
		}
		return 1
	}

	rule := strings.Repeat("─", 60)
	success.Fprintln(stdout, "\nPassword hash generated!")
	fmt.Fprintln(stdout, "\nAdd this to your .env:")
	fmt.Fprintln(stdout, rule)
	fmt.Fprintf(stdout, "ADMIN_PASSWORD_HASH=%s\n", hash)
	fmt.Fprintln(stdout, rule)
	warning.Fprintln(stdout, "\nKeep this secure - never commit it to git!")
	return 0
}
