package app

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/daemon"
	"github.com/re-libas/relibas-server/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration directory

	cfg     config.Config
	err     error
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the Re-Libas web service",
		PreRun: func(_ *cobra.Command, _ []string) {
			// .env is optional, used mainly for dev setups
			_ = godotenv.Load()

			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := logger.Init(cfg.Log); err != nil {
				return err
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Run()
		},
	}
)
