package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	assert.Equal(t, StatePresent, StateOf(1, 0))
	assert.Equal(t, StatePresent, StateOf(2, 3))
	assert.Equal(t, StateCovered, StateOf(0, 1))
	assert.Equal(t, StateMissing, StateOf(0, 0))
}

func TestTally_Add(t *testing.T) {
	var tally Tally
	for _, s := range []PageState{StatePresent, StateCovered, StateMissing, StateMissing} {
		tally.Add(s)
	}
	assert.Equal(t, Tally{Expected: 4, Present: 1, Covered: 1, Missing: 2}, tally)
}
