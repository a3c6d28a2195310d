package response

import (
	"bytes"

	"github.com/aerohttp/aero/core/transport"
)

// Raw is a fully caller-controlled responder. Status overrides the response
// status when non-zero, headers are applied unconditionally (the caller
// opted out of first-writer-wins by going raw), and Body is emitted as-is.
type Raw struct {
	Status int
	Header map[string]string
	Body   []byte
}

func (r Raw) Options(res *transport.Response) {
	if r.Status != 0 {
		res.Status = r.Status
	}
	for name, value := range r.Header {
		res.Header.Set(name, value)
	}
}

func (r Raw) Output(buf *bytes.Buffer) error {
	buf.Write(r.Body)
	return nil
}
