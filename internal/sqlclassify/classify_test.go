package sqlclassify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wafcore/sqlwaf/internal/sqlfold"
	"github.com/wafcore/sqlwaf/internal/sqltoken"
)

func TestIsAttackOnKnownTautology(t *testing.T) {
	input := []byte("1' OR '1'='1")
	fr := sqlfold.Fold(input, sqltoken.QuoteSingle)
	assert.True(t, IsAttack(input, fr))
}

func TestIsAttackFalseForBenignEmail(t *testing.T) {
	input := []byte("john.doe@example.com")
	fr := sqlfold.Fold(input, 0)
	assert.False(t, IsAttack(input, fr))
}

func TestIsBlacklistedFalseForEmptyFingerprint(t *testing.T) {
	assert.False(t, IsBlacklisted(""))
}
