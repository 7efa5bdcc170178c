// Command wafcheck is the CLI surface around the sqlwaf detection
// core: ad hoc checks against stdin/files, fingerprint introspection
// for golden-file debugging, and corpus-backed query-log scanning.
// The detection core itself (packages sqli, xss, sqlwaf) stays a pure,
// I/O-free library; all of that lives here instead, one file per
// subcommand.
package main

import (
	"os"

	"github.com/wafcore/sqlwaf/cmd/wafcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
