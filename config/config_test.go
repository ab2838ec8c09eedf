package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("FLOODSNAKE_TEST_INT", "42")
	require.Equal(t, 42, getEnvInt("FLOODSNAKE_TEST_INT", 7))

	t.Setenv("FLOODSNAKE_TEST_INT", "forty-two")
	require.Equal(t, 7, getEnvInt("FLOODSNAKE_TEST_INT", 7))

	require.Equal(t, 7, getEnvInt("FLOODSNAKE_TEST_UNSET", 7))
}

func TestGetEnvString(t *testing.T) {
	t.Setenv("FLOODSNAKE_TEST_STRING", "#ff00ff")
	require.Equal(t, "#ff00ff", getEnvString("FLOODSNAKE_TEST_STRING", "#000000"))
	require.Equal(t, "#000000", getEnvString("FLOODSNAKE_TEST_UNSET", "#000000"))
}
