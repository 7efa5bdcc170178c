package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wafcore/sqlwaf/sqli"
	"github.com/wafcore/sqlwaf/xss"
)

var checkFile string

type checkResult struct {
	Line string `json:"line"`
	SQLi bool   `json:"sqli"`
	XSS  bool   `json:"xss"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Classify each line of stdin (or --file) as SQLi/XSS/benign",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := os.Stdin
		if checkFile != "" {
			f, err := os.Open(checkFile)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		enc := json.NewEncoder(os.Stdout)

		for scanner.Scan() {
			line := scanner.Text()
			res := checkResult{
				Line: line,
				SQLi: sqli.IsSQLi([]byte(line)),
				XSS:  xss.IsXSS([]byte(line)),
			}
			if jsonOutput {
				if err := enc.Encode(res); err != nil {
					return err
				}
				continue
			}
			verdict := "benign"
			switch {
			case res.SQLi && res.XSS:
				verdict = "sqli+xss"
			case res.SQLi:
				verdict = "sqli"
			case res.XSS:
				verdict = "xss"
			}
			fmt.Printf("%s\t%s\n", verdict, line)
		}
		return scanner.Err()
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "file to scan instead of stdin, one input per line")
	rootCmd.AddCommand(checkCmd)
}
