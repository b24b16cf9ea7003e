package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	require.NotNil(Default())
	assert.Same(Default(), Default())

	SetSink(NopSink())
	SetSink(nil) // ignored

	assert.False(LoggingEnabled())
	EnableLogging()
	assert.True(LoggingEnabled())
	DisableLogging()
	assert.False(LoggingEnabled())

	assert.Error(Start("  "))
	require.NoError(Start("defaultOperation"))
	assert.GreaterOrEqual(ElapsedTime(), int64(0))
	assert.GreaterOrEqual(Stop(), int64(0))
	assert.Contains(Stats(), "defaultOperation")

	require.NoError(Start("abandonedOperation"))
	Reset()
	assert.Zero(Stop())
}
