package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit_SetsGlobalLevel(t *testing.T) {
	Init("debug")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Init("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	Init("verbose")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
