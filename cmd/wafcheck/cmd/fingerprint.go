package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wafcore/sqlwaf/sqli"
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <input>",
	Short: "Print the SQLi fingerprint and verdict for one input",
	Long:  "Runs the NONE+ANSI pass (or whichever context first flagged an attack) and prints its fingerprint, for golden-file debugging.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one argument")
		}
		attack, fp := sqli.Fingerprint([]byte(args[0]))
		fmt.Printf("attack=%v fingerprint=%q\n", attack, fp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fingerprintCmd)
}
