package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mpw"
	"mpw/internal/config"
	"mpw/internal/logging"
)

func generate(cmd *cobra.Command, opts *options, sites []string) error {
	log := logging.Logger{Verbose: opts.Verbose, Debug: opts.Debug, Out: cmd.ErrOrStderr()}

	s, err := resolveSettings(cmd, opts, log)
	if err != nil {
		return err
	}

	tmpl, err := mpw.ParseTemplate(s.Template)
	if err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}
	log.Debugf("Using template %s, counter %d", tmpl, s.Counter)

	if err := hardenProcess(); err != nil {
		log.Warnf("Could not disable core dumps: %v", err)
	}

	passphrase, err := getPassphrase("Master password: ")
	if err != nil {
		return fmt.Errorf("failed to get master password: %w", err)
	}
	defer mpw.Wipe(passphrase)

	if len(passphrase) == 0 {
		return fmt.Errorf("master password cannot be empty")
	}

	stop := startSpinner(cmd.ErrOrStderr(), "Deriving master key...", log.Quiet())
	key, err := mpw.DeriveMasterKey(s.FullName, passphrase)
	stop()
	if err != nil {
		return fmt.Errorf("failed to derive master key: %w", err)
	}
	defer key.Release()
	log.Infof("Derived master key for %s", s.FullName)

	out := cmd.OutOrStdout()
	for _, site := range sites {
		password, err := sitePassword(key, site, s.Counter, tmpl)
		if err != nil {
			return fmt.Errorf("site %q: %w", site, err)
		}
		log.Debugf("Rendered %s password for %s", tmpl, site)

		if _, err := fmt.Fprintln(out, password); err != nil {
			return fmt.Errorf("failed to write password: %w", err)
		}
	}

	return nil
}

func sitePassword(key *mpw.MasterKey, site string, counter uint32, tmpl mpw.Template) (string, error) {
	seed, err := mpw.DeriveSiteSeed(key, site, counter)
	if err != nil {
		return "", err
	}
	defer seed.Release()

	return mpw.RenderPassword(seed, tmpl)
}

// resolveSettings merges, in increasing priority, the config file, the
// environment and the command line flags.
func resolveSettings(cmd *cobra.Command, opts *options, log logging.Logger) (settings, error) {
	path, err := configPath(opts)
	if err != nil {
		return settings{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return settings{}, err
	}
	log.Debugf("Loaded config from %s", path)

	s := settings{
		FullName: cfg.FullName,
		Template: cfg.Template,
		Counter:  cfg.Counter,
	}

	if env := os.Getenv(FullNameEnvVar); env != "" {
		s.FullName = env
	}

	flags := cmd.Flags()
	if flags.Changed("user") {
		s.FullName = opts.FullName
	}
	if flags.Changed("template") {
		s.Template = opts.Template
	}
	if flags.Changed("counter") {
		s.Counter = opts.Counter
	} else if s.Counter == 0 {
		s.Counter = mpw.DefaultCounter
	}
	if s.Template == "" {
		s.Template = defaultTemplate
	}

	if s.FullName == "" {
		return settings{}, fmt.Errorf("full name not set: use --user, %s, or 'mpw config init'", FullNameEnvVar)
	}

	return s, nil
}

func configPath(opts *options) (string, error) {
	if opts.ConfigPath != "" {
		return opts.ConfigPath, nil
	}
	return config.DefaultPath()
}
