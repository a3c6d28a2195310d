package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameCodec(t *testing.T) {
	t.Parallel()

	t.Run("round trip with origin", func(t *testing.T) {
		t.Parallel()

		in := Message{Data: []byte("payload"), Binary: true}
		frame, err := encodeFrame(in, "peer-123")
		require.NoError(t, err)

		out, origin, err := decodeFrame(frame)
		require.NoError(t, err)
		assert.Equal(t, in, out)
		assert.Equal(t, "peer-123", origin)
	})

	t.Run("round trip without origin", func(t *testing.T) {
		t.Parallel()

		frame, err := encodeFrame(Message{Data: []byte("text")}, "")
		require.NoError(t, err)

		out, origin, err := decodeFrame(frame)
		require.NoError(t, err)
		assert.False(t, out.Binary)
		assert.Equal(t, "text", out.Text())
		assert.Empty(t, origin)
	})

	t.Run("empty payload", func(t *testing.T) {
		t.Parallel()

		frame, err := encodeFrame(Message{}, "")
		require.NoError(t, err)

		out, origin, err := decodeFrame(frame)
		require.NoError(t, err)
		assert.Empty(t, out.Data)
		assert.Empty(t, origin)
	})

	t.Run("truncated frames rejected", func(t *testing.T) {
		t.Parallel()

		_, _, err := decodeFrame(nil)
		assert.ErrorIs(t, err, ErrMalformedFrame)

		_, _, err = decodeFrame([]byte{0})
		assert.ErrorIs(t, err, ErrMalformedFrame)

		_, _, err = decodeFrame([]byte{0, 10, 'x'})
		assert.ErrorIs(t, err, ErrMalformedFrame)
	})
}
