// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var (
	configPath string // directory holding main.toml

	rootCmd = &cobra.Command{
		Use:   "doctor-portal",
		Short: "Doctor Portal serves the multi-language clinic content API",
		Long: `Doctor Portal serves doctors, services, testimonials, blog posts and site
settings with per-field translations, plus the admin API used to maintain them.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "Directory containing main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
