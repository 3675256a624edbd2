package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		assert.NoError(t, SetupLogger(level, "console"), level)
	}
	assert.NoError(t, SetupLogger("info", "json"))
	assert.NoError(t, SetupLogger("info", ""))
}

func TestSetupLoggerRejectsBadConfig(t *testing.T) {
	err := SetupLogger("loud", "console")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	err = SetupLogger("info", "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
