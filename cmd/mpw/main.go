package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mpw"
)

const (
	Version = "1.0.0"

	// Environment variables
	PassphraseEnvVar = "MPW_PASSPHRASE"
	FullNameEnvVar   = "MPW_FULLNAME"

	defaultTemplate = "long"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mpw [flags] SITE...",
		Short: "mpw - Deterministic site passwords from a master password",
		Long: `mpw derives a password for each SITE from your full name and master
password. Nothing is stored: the same inputs always give the same password.

PASSWORD:
    Set MPW_PASSPHRASE environment variable, or enter interactively.

FULL NAME:
    --user, then MPW_FULLNAME, then full_name in the config file.

TEMPLATES:
    maximum (x), long (l), medium (m), basic (b), short (s), pin (i),
    name (n), phrase (p). Run 'mpw templates' for the patterns.

SECURITY:
    - Master key derived with scrypt (N=32768, r=8, p=2)
    - Site seed is HMAC-SHA256 over the site name and counter
    - Keys and seeds are wiped from memory before exit`,
		Example: `    # Long password for a site, prompting for the master password
    mpw -u "Robert Lee Mitchell" masterpasswordapp.com

    # Rotate a leaked password by bumping the counter
    mpw -u "Robert Lee Mitchell" -c 2 masterpasswordapp.com

    # PIN and basic passwords
    mpw -t pin bank.example
    mpw -t basic example.com example.org`,
		Args:          cobra.MinimumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.FullName, "user", "u", "", "full name the master key is salted with")
	cmd.Flags().StringVarP(&opts.Template, "template", "t", "", "password template: "+templateCodes()+" (default \""+defaultTemplate+"\")")
	cmd.Flags().Uint32VarP(&opts.Counter, "counter", "c", mpw.DefaultCounter, "site counter, increment to rotate a password")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.Flags().BoolVarP(&opts.Debug, "debug", "d", false, "enable debug output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $MPW_CONFIG or $XDG_CONFIG_HOME/mpw/config.toml)")

	cmd.AddCommand(newTemplatesCmd())
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
