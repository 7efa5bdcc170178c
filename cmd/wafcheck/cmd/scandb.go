package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wafcore/sqlwaf/corpus"
)

var scanDBCmd = &cobra.Command{
	Use:   "scan-db <database>",
	Short: "Scan a configured query-log table and flag rows that look like SQLi/XSS",
	Long:  "Opens the named database from waf.yaml's databases map, pulls every row of its configured table/textColumn, and runs IsSQLi/IsXSS over each one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one argument: the database name from waf.yaml")
		}
		name := args[0]
		ctx := context.Background()
		log := logger()

		cfg, err := corpus.LoadConfig(configPath)
		if err != nil {
			return err
		}
		dbcfg, ok := cfg.Databases[name]
		if !ok {
			return fmt.Errorf("database %q not present in %s", name, configPath)
		}

		db, err := corpus.Open(name, dbcfg)
		if err != nil {
			return err
		}
		defer db.Close()

		flags, err := corpus.Scan(ctx, db, dbcfg, log)
		if err != nil {
			return err
		}

		for _, f := range flags {
			fmt.Printf("%s\trun=%s\tsqli=%v\txss=%v\t%s\n", f.ID, f.RunID, f.SQLi, f.XSS, f.Text)
		}
		if len(flags) == 0 {
			fmt.Println("no suspicious rows found")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanDBCmd)
}
