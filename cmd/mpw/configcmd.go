package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mpw"
	"mpw/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the defaults file",
		Long:  `Stores the full name, default template and default counter. Passwords and keys are never written.`,
	}

	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))

	return cmd
}

func newConfigInitCmd(opts *options) *cobra.Command {
	var (
		cfg   config.Config
		force bool
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Write the defaults file",
		Example: `    mpw config init -u "Robert Lee Mitchell" -t long`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts)
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config %s already exists, use --force to overwrite", path)
				}
			}

			if cfg.FullName == "" {
				return fmt.Errorf("--user is required")
			}
			if cfg.Template != "" {
				tmpl, err := mpw.ParseTemplate(cfg.Template)
				if err != nil {
					return fmt.Errorf("invalid template: %w", err)
				}
				cfg.Template = tmpl.String()
			}

			if err := config.Save(path, &cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%s Wrote %s\n", color.GreenString("✓"), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.FullName, "user", "u", "", "full name the master key is salted with")
	cmd.Flags().StringVarP(&cfg.Template, "template", "t", "", "default password template")
	cmd.Flags().Uint32VarP(&cfg.Counter, "counter", "c", 0, "default site counter (0 leaves it unset)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config")

	return cmd
}

func newConfigShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the defaults file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts)
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s No config at %s\n", color.YellowString("!"), path)
				return nil
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "# %s\n", path)
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	}
}
