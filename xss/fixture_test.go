package xss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wafcore/sqlwaf/internal/fixture"
	"github.com/wafcore/sqlwaf/xss"
)

func TestGoldenFixtures(t *testing.T) {
	cases, err := fixture.LoadDir("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		c := c
		if c.Kind != fixture.KindHTML5 {
			continue
		}
		t.Run(c.Name, func(t *testing.T) {
			want := c.Expected == "true"
			assert.Equal(t, want, xss.IsXSS(c.Input), "input: %q", c.Input)
		})
	}
}
