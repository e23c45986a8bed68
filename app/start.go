package app

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/DoctorPortal/DoctorPortal/internal/config"
	"github.com/DoctorPortal/DoctorPortal/internal/daemon"
	"github.com/DoctorPortal/DoctorPortal/internal/logger"
	"github.com/DoctorPortal/DoctorPortal/internal/randstr"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	cfg     config.Config
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the Doctor Portal web service",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if cfg, err = loadConfig(devMode); err != nil {
				return err
			}

			if err = logger.Init(cfg.Log); err != nil {
				return err
			}

			if cfg.DevMode && cfg.Auth.JWTSecret == "" {
				if cfg.Auth.JWTSecret, err = randstr.Secret(); err != nil {
					return err
				}

				log.Warn().Msg("dev mode: no jwt secret configured, tokens are signed with a random secret")
			}

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)

// loadConfig reads .env when present and then the TOML configuration.
// The dev flag is passed on as environment override so validation sees it.
func loadConfig(dev bool) (config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return config.Config{}, err //nolint:wrapcheck
	}

	if dev {
		if err := os.Setenv(config.EnvPrefix+"_DEVMODE", "true"); err != nil {
			return config.Config{}, err //nolint:wrapcheck
		}
	}

	return config.ReadConfig(configPath)
}
