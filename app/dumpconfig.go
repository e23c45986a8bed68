package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DoctorPortal/DoctorPortal/internal/config"
)

func init() { //nolint: gochecknoinits
	dumpConfigCmd.Flags().BoolVar(&dumpJSON, "json", false, "Dump as JSON instead of TOML")

	rootCmd.AddCommand(dumpConfigCmd)
}

var (
	dumpJSON bool

	dumpConfigCmd = &cobra.Command{
		Use:   "dump-config",
		Short: "Print the effective configuration with secrets masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig(false)
			if err != nil {
				return err
			}

			masked := config.Masked(c)

			var out string
			if dumpJSON {
				out, err = config.DumpConfigJSON(&masked)
			} else {
				out, err = config.DumpConfig(&masked)
			}

			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}
)
