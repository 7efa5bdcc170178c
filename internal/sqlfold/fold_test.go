package sqlfold

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wafcore/sqlwaf/internal/sqltoken"
)

func TestFoldFingerprintLength(t *testing.T) {
	r := Fold([]byte("1 UNION SELECT * FROM users WHERE id = 1 OR 1=1"), 0)
	assert.LessOrEqual(t, len(r.Fingerprint), 5)
}

func TestFoldIsFixedPoint(t *testing.T) {
	input := []byte("1' OR '1'='1")
	r1 := Fold(input, sqltoken.QuoteSingle)
	r2 := Fold(input, sqltoken.QuoteSingle)
	assert.Equal(t, r1.Fingerprint, r2.Fingerprint)
}

func TestFoldStringConcatenation(t *testing.T) {
	r := Fold([]byte("'a' 'b'"), 0)
	assert.Equal(t, "s", r.Fingerprint)
}

func TestFoldEvilForcesX(t *testing.T) {
	r := Fold([]byte("/* a /* b */ c */"), 0)
	assert.Equal(t, "X", r.Fingerprint)
}

func TestFoldEmptyInput(t *testing.T) {
	r := Fold([]byte(""), 0)
	assert.Equal(t, "", r.Fingerprint)
}

func TestFoldDoubleSemicolon(t *testing.T) {
	r := Fold([]byte(";;"), 0)
	assert.Equal(t, ";", r.Fingerprint)
}
