package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"fan@example.com",
		"first.last+tag@sub.example.co.uk",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainstring",
		"@example.com",
		"fan@",
		"fan@example",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}
