package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/wannabet/internal/models"
)

func TestParseBet(t *testing.T) {
	testCases := []struct {
		line   string
		index  int
		stance models.Stance
		ok     bool
	}{
		{"2+", 1, models.StanceBacking, true},
		{" 3- ", 2, models.StanceOpposing, true},
		{"1 +", 0, models.StanceBacking, true},
		{"5+", 0, "", false},
		{"0-", 0, "", false},
		{"2", 0, "", false},
		{"x+", 0, "", false},
		{"+", 0, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			index, stance, err := parseBet(tc.line, 4)
			if !tc.ok {
				assert.Equal(t, errBadBet, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.index, index)
			assert.Equal(t, tc.stance, stance)
		})
	}
}

func TestParseYesNo(t *testing.T) {
	v, ok := parseYesNo("", true)
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = parseYesNo("Ja", false)
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = parseYesNo("n", true)
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = parseYesNo("maybe", true)
	assert.False(t, ok)
}

func TestParseForget(t *testing.T) {
	index, ok := parseForget("forget 2", 3)
	assert.True(t, ok)
	assert.Equal(t, 1, index)

	index, ok = parseForget("  Forget   1 ", 3)
	assert.True(t, ok)
	assert.Equal(t, 0, index)

	for _, line := range []string{"forget", "forget 4", "forget 0", "forget x", "forgot 1", "forget 1 2", "Anna"} {
		_, ok := parseForget(line, 3)
		assert.False(t, ok, line)
	}
}
