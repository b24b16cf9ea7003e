package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptionsDefault(t *testing.T, o *Options) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	assert.False(o.logging())
	require.NotNil(o.sink())
	require.NotNil(o.nowFunc())
	require.NotNil(o.sinceFunc())

	assert.WithinDuration(time.Now(), o.nowFunc()(), time.Minute)
}

func testOptionsCustom(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		expectedNow   = time.Date(2009, 11, 10, 23, 0, 0, 0, time.UTC)
		expectedSince = 17 * time.Millisecond
		sink          = new(captureSink)

		o = &Options{
			Logging: true,
			Sink:    sink,
			Now:     func() time.Time { return expectedNow },
			Since:   func(time.Time) time.Duration { return expectedSince },
		}
	)

	assert.True(o.logging())
	require.NotNil(o.sink())
	assert.Equal(expectedNow, o.nowFunc()())
	assert.Equal(expectedSince, o.sinceFunc()(time.Now()))

	o.sink().Log("op1", "message")
	assert.Equal([]sinkEvent{{operation: "op1", message: "message"}}, sink.Events())
}

func TestOptions(t *testing.T) {
	t.Run("Nil", func(t *testing.T) { testOptionsDefault(t, nil) })
	t.Run("Empty", func(t *testing.T) { testOptionsDefault(t, new(Options)) })
	t.Run("Custom", testOptionsCustom)
}
