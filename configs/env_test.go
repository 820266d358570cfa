package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvFallback(t *testing.T) {
	assert.Equal(t, "default", GetEnv("PORTFOLIO_TEST_UNSET", "default"))

	t.Setenv("PORTFOLIO_TEST_SET", "value")
	assert.Equal(t, "value", GetEnv("PORTFOLIO_TEST_SET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	assert.Equal(t, 25, GetEnvInt("PORTFOLIO_TEST_UNSET", 25))

	t.Setenv("PORTFOLIO_TEST_INT", "40")
	assert.Equal(t, 40, GetEnvInt("PORTFOLIO_TEST_INT", 25))

	t.Setenv("PORTFOLIO_TEST_INT", "not-a-number")
	assert.Equal(t, 25, GetEnvInt("PORTFOLIO_TEST_INT", 25))
}
