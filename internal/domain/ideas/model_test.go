package ideas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatusAdvancesForwardOnly(t *testing.T) {
	next, ok := NextStatus(StatusDumped)
	assert.True(t, ok)
	assert.Equal(t, StatusRefined, next)

	next, ok = NextStatus(StatusRefined)
	assert.True(t, ok)
	assert.Equal(t, StatusPlanned, next)

	next, ok = NextStatus(StatusPlanned)
	assert.True(t, ok)
	assert.Equal(t, StatusScripted, next)
}

func TestNextStatusTerminal(t *testing.T) {
	_, ok := NextStatus(StatusScripted)
	assert.False(t, ok)

	_, ok = NextStatus("garbage")
	assert.False(t, ok)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusDumped, StatusRefined, StatusPlanned, StatusScripted} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("published"))
}
