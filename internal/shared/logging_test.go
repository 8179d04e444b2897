package shared

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerHonorsDebugFlag(t *testing.T) {
	require.Equal(t, zerolog.InfoLevel, SetupLogger(false).GetLevel())
	require.Equal(t, zerolog.DebugLevel, SetupLogger(true).GetLevel())
}
