package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_KEY", "a=b")
	c := New()
	assert.Equal(t, "a=b", GetString(c, "PORTFOLIO_TEST_KEY", ""))
}

func TestGetters(t *testing.T) {
	c := map[string]string{
		"PORT":    "9090",
		"BAD_INT": "nine",
		"EMPTY":   "",
		"DEV":     "true",
		"ORIGINS": "https://a.dev, ,https://b.dev",
	}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "fallback", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))

	assert.Equal(t, 9090, GetInt(c, "PORT", 1))
	assert.Equal(t, 1, GetInt(c, "BAD_INT", 1))
	assert.Equal(t, 1, GetInt(c, "MISSING", 1))

	assert.True(t, GetBool(c, "DEV", false))
	assert.True(t, GetBool(c, "PORT", true))
	assert.False(t, GetBool(c, "MISSING", false))

	assert.Equal(t, 3*time.Second, GetSeconds(c, "MISSING", 3))
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, GetList(c, "ORIGINS"))
	assert.Nil(t, GetList(c, "MISSING"))
}
