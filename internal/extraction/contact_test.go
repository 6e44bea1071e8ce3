package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-ranker/internal/types"
)

func TestContactInfo_EmailAndPhone(t *testing.T) {
	e := NewDefault()

	info := e.ContactInfo("Reach me at jane@x.com or 415-555-1234")

	assert.Equal(t, "jane@x.com", info.Email)
	assert.Equal(t, "415-555-1234", info.Phone)
	assert.Empty(t, info.LinkedIn)
	assert.Empty(t, info.GitHub)
}

func TestContactInfo_FirstEmailWins(t *testing.T) {
	e := NewDefault()

	info := e.ContactInfo("primary: first@example.com, backup: second@example.org")

	assert.Equal(t, "first@example.com", info.Email)
}

func TestContactInfo_InternationalPhone(t *testing.T) {
	e := NewDefault()

	info := e.ContactInfo("Call +1 415 555 1234 anytime")

	assert.Equal(t, "+1 415 555 1234", info.Phone)
}

func TestContactInfo_ProfileURLs(t *testing.T) {
	e := NewDefault()

	info := e.ContactInfo("See LinkedIn.com/in/jane-doe and github.com/janedoe for more")

	assert.Equal(t, "https://LinkedIn.com/in/jane-doe", info.LinkedIn)
	assert.Equal(t, "https://github.com/janedoe", info.GitHub)
}

func TestContactInfo_EmptyText(t *testing.T) {
	e := NewDefault()

	info := e.ContactInfo("")

	assert.Equal(t, "", info.Email)
	assert.Equal(t, "", info.Phone)
	assert.Equal(t, "", info.LinkedIn)
	assert.Equal(t, "", info.GitHub)
}

func TestContactInfo_NoSignals(t *testing.T) {
	e := NewDefault()

	info := e.ContactInfo("An enthusiastic engineer with a passion for distributed systems.")

	assert.Equal(t, types.ContactInfo{}, info)
}
