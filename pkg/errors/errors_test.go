package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	c, ok := Lookup("40013")
	assert.True(t, ok)
	assert.Equal(t, SessionExpired, c)

	_, ok = Lookup("99999")
	assert.False(t, ok)
}

func TestCode(t *testing.T) {
	assert.True(t, Success.IsSuccess())
	assert.False(t, Fail.IsSuccess())
	assert.Equal(t, "InvalidParameter(40002)", InvalidParameter.String())
}

func TestCodesUnique(t *testing.T) {
	seen := make(map[string]bool, len(all))
	for _, c := range all {
		assert.False(t, seen[c.Code], "重复的错误码 %s", c.Code)
		seen[c.Code] = true
	}
}
