package response_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerohttp/aero/core/cookie"
	"github.com/aerohttp/aero/core/handler"
	"github.com/aerohttp/aero/core/response"
	"github.com/aerohttp/aero/core/transport"
)

// materialise runs the two-step responder protocol against a fresh response.
func materialise(t *testing.T, r handler.Responder) (*transport.Response, []byte) {
	t.Helper()
	res := transport.NewResponse()
	r.Options(res)
	var buf bytes.Buffer
	require.NoError(t, r.Output(&buf))
	return res, buf.Bytes()
}

func TestText(t *testing.T) {
	t.Parallel()

	res, body := materialise(t, response.Text("hi"))
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, "text/plain; charset=utf-8", res.Header.Get("Content-Type"))
	assert.Equal(t, "hi", string(body))
}

func TestTextEmptyBodySkipsContentType(t *testing.T) {
	t.Parallel()

	res, body := materialise(t, response.Text(""))
	assert.False(t, res.Header.Has("Content-Type"))
	assert.Empty(t, body)
}

func TestHTML(t *testing.T) {
	t.Parallel()

	res, body := materialise(t, response.HTML("<h1>ok</h1>"))
	assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))
	assert.Equal(t, "<h1>ok</h1>", string(body))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("canonical encoding", func(t *testing.T) {
		t.Parallel()

		res, body := materialise(t, response.JSON(map[string]string{"id": "42"}))
		assert.Equal(t, "application/json; charset=utf-8", res.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"id":"42"}`, string(body))
	})

	t.Run("status override", func(t *testing.T) {
		t.Parallel()

		res, _ := materialise(t, response.JSONWithStatus(map[string]string{"err": "nope"}, 422))
		assert.Equal(t, 422, res.Status)
	})

	t.Run("unencodable value fails output", func(t *testing.T) {
		t.Parallel()

		r := response.JSON(make(chan int))
		res := transport.NewResponse()
		r.Options(res)
		var buf bytes.Buffer
		assert.Error(t, r.Output(&buf))
	})
}

func TestBytes(t *testing.T) {
	t.Parallel()

	res, body := materialise(t, response.Bytes([]byte{0x01, 0x02}))
	assert.Equal(t, "application/octet-stream", res.Header.Get("Content-Type"))
	assert.Equal(t, []byte{0x01, 0x02}, body)
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	res, body := materialise(t, response.Empty())
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, 0, res.Header.Len())
	assert.Empty(t, body)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	res, body := materialise(t, response.NotFound())
	assert.Equal(t, 404, res.Status)
	assert.Equal(t, "text/plain; charset=utf-8", res.Header.Get("Content-Type"))
	assert.Equal(t, "Not Found", string(body))
}

func TestRaw(t *testing.T) {
	t.Parallel()

	res, body := materialise(t, response.Raw{
		Status: 418,
		Header: map[string]string{"Content-Type": "application/x-teapot"},
		Body:   []byte("short and stout"),
	})
	assert.Equal(t, 418, res.Status)
	assert.Equal(t, "application/x-teapot", res.Header.Get("Content-Type"))
	assert.Equal(t, "short and stout", string(body))
}

func TestContentTypeFirstWriterWins(t *testing.T) {
	t.Parallel()

	res := transport.NewResponse()
	res.Header.Set("Content-Type", "application/vnd.custom")

	r := response.Text("body")
	r.Options(res)
	assert.Equal(t, "application/vnd.custom", res.Header.Get("Content-Type"))
}

func TestDecorators(t *testing.T) {
	t.Parallel()

	t.Run("with status", func(t *testing.T) {
		t.Parallel()

		res, body := materialise(t, response.WithStatus(response.Text("made"), 201))
		assert.Equal(t, 201, res.Status)
		assert.Equal(t, "made", string(body))
	})

	t.Run("with header wins content type conflict", func(t *testing.T) {
		t.Parallel()

		res, _ := materialise(t, response.WithHeader(response.Text("x"), "Content-Type", "text/csv"))
		assert.Equal(t, "text/csv", res.Header.Get("Content-Type"))
	})

	t.Run("with cookie", func(t *testing.T) {
		t.Parallel()

		res, _ := materialise(t, response.WithCookie(response.Empty(), cookie.New("a", "1")))
		require.Len(t, res.Cookies, 1)
		assert.Equal(t, "a=1", res.Cookies[0].Serialize())
	})
}
