package response

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aerohttp/aero/core/handler"
	"github.com/aerohttp/aero/core/transport"
)

type jsonResponder struct {
	value  any
	status int
}

// JSON creates an application/json responder. The value is serialised as
// compact JSON when the response body is written; serialisation failures
// surface through the orchestrator's 500 path.
func JSON(v any) handler.Responder {
	return jsonResponder{value: v}
}

// JSONWithStatus creates an application/json responder that overrides the
// response status.
func JSONWithStatus(v any, status int) handler.Responder {
	return jsonResponder{value: v, status: status}
}

func (j jsonResponder) Options(res *transport.Response) {
	if j.status != 0 {
		res.Status = j.status
	}
	setContentType(res, "application/json; charset=utf-8")
}

func (j jsonResponder) Output(buf *bytes.Buffer) error {
	data, err := json.Marshal(j.value)
	if err != nil {
		return fmt.Errorf("encode json response: %w", err)
	}
	buf.Write(data)
	return nil
}
