package sqli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wafcore/sqlwaf/internal/fixture"
	"github.com/wafcore/sqlwaf/sqli"
)

// TestGoldenFixtures runs every "-sqli-" marked fixture under testdata
// through the driver and checks its verdict against --EXPECTED--
// ("true" or "false").
func TestGoldenFixtures(t *testing.T) {
	cases, err := fixture.LoadDir("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		c := c
		if c.Kind != fixture.KindSQLi {
			continue
		}
		t.Run(c.Name, func(t *testing.T) {
			want := c.Expected == "true"
			assert.Equal(t, want, sqli.IsSQLi(c.Input), "input: %q", c.Input)
		})
	}
}
