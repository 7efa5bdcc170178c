package sqlwaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSQLi(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
		{"comment union select", "-1' and 1=1 union/* foo */select load_file('/etc/passwd')--", true},
		{"tautology", "1' OR '1'='1", true},
		{"union select", "1 UNION SELECT * FROM users", true},
		{"email address", "john.doe@example.com", false},
		{"plain number", "12345", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsSQLi([]byte(c.in)), "input: %q", c.in)
		})
	}
}

func TestIsXSS(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"script tag", "<script>alert(1);</script>", true},
		{"javascript href", `<a href="JAVASCRIPT:alert(1);" >`, true},
		{"bare event handler", "onerror=alert(1)>", true},
		{"plain markup", "<p>Hello World</p>", false},
		{"on-prefixed non-handler", "onY29va2llcw==", false},
		{"incomplete entity", "href=&#", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsXSS([]byte(c.in)), "input: %q", c.in)
		})
	}
}
