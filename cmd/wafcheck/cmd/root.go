package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "wafcheck",
		Short:        "wafcheck",
		SilenceUsage: true,
		Long:         `CLI around the sqlwaf SQLi/XSS detection core: ad hoc checks, fingerprint introspection, and corpus query-log scanning.`,
	}

	configPath string
	jsonOutput bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "waf.yaml", "path to the corpus config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit structured JSON output")
	return rootCmd.Execute()
}

func logger() logrus.FieldLogger {
	return logrus.StandardLogger()
}
