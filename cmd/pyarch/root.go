package main

import (
	"github.com/spf13/cobra"

	"github.com/AdrianaGRO/PyArch.dev/internal/config"
	"github.com/AdrianaGRO/PyArch.dev/internal/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configFile string
	envFile    string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pyarch",
		Short: "PyArch.dev site server and content tools",
		Long: `pyarch serves the PyArch.dev site: the blog, the project portfolio and
the pricing pages, all backed by JSON documents on disk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithOptions(config.Options{
				ConfigFile: a.configFile,
				EnvFile:    a.envFile,
			})
			if err != nil {
				return err
			}
			logger.Configure(cfg.LogLevel, cfg.LogFormat)
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default is ./config.yaml)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before the environment")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newPostsCmd(a))
	root.AddCommand(newCheckCmd(a))
	return root
}
