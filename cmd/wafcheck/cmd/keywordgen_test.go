package cmd

import "testing"

func TestIsIdentifierShaped(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{"SELECT", true},
		{"GROUP_BY", true},
		{"0SO1UE", false},
		{"", false},
		{"SELECT;", false},
	}
	for _, c := range cases {
		if got := isIdentifierShaped(c.word); got != c.want {
			t.Errorf("isIdentifierShaped(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}
