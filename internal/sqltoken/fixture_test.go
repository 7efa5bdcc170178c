package sqltoken

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wafcore/sqlwaf/internal/fixture"
)

// TestGoldenTokenTypes runs every "-tokens-" fixture's --INPUT-- and
// compares the concatenated token Type bytes against --EXPECTED--.
func TestGoldenTokenTypes(t *testing.T) {
	cases, err := fixture.LoadDir("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		c := c
		if c.Kind != fixture.KindTokens {
			continue
		}
		t.Run(c.Name, func(t *testing.T) {
			toks := tokenize(t, string(c.Input), 0)
			got := make([]byte, len(toks))
			for i, tok := range toks {
				got[i] = byte(tok.Type)
			}
			if !assert.Equal(t, c.Expected, string(got)) {
				t.Logf("tokens: %s", repr.String(toks))
			}
		})
	}
}
