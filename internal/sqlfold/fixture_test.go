package sqlfold

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wafcore/sqlwaf/internal/fixture"
	"github.com/wafcore/sqlwaf/internal/sqltoken"
)

// TestGoldenFingerprints runs every "-folding-" fixture's --INPUT--
// through Fold and compares the resulting fingerprint to --EXPECTED--,
// dumping the folded token window with repr on mismatch the way
// sqltest.DumpRows does for query results.
func TestGoldenFingerprints(t *testing.T) {
	cases, err := fixture.LoadDir("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		c := c
		if c.Kind != fixture.KindFolding {
			continue
		}
		t.Run(c.Name, func(t *testing.T) {
			r := Fold(c.Input, sqltoken.QuoteNone|sqltoken.DialectANSI)
			if !assert.Equal(t, c.Expected, r.Fingerprint) {
				t.Logf("folded tokens: %s", repr.String(r.Tokens))
			}
		})
	}
}
