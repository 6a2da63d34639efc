package aura

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRosterAuthorize(t *testing.T) {
	r := NewRoster("1", " 2 ", "", "3")

	assert.True(t, r.Authorize("1"))
	assert.True(t, r.Authorize("2"))
	assert.True(t, r.Authorize("3"))
	assert.Equal(t, 3, r.Len())

	for _, id := range []string{"", " ", "4", "10", " 1"} {
		assert.False(t, r.Authorize(id), "id %q", id)
	}
}

func TestEmptyRosterDeniesEveryone(t *testing.T) {
	var nilRoster *Roster
	assert.False(t, nilRoster.Authorize("1"))
	assert.False(t, NewRoster().Authorize("1"))
	assert.False(t, NewRoster("").Authorize(""))
}
