package server

import (
	"io"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/aerohttp/aero/core/transport"
	"github.com/aerohttp/aero/core/ws"
)

// WSRouter is the optional dispatcher capability for WebSocket upgrades.
// The application facade satisfies it; a dispatcher without it serves
// upgrade requests as plain HTTP.
type WSRouter interface {
	WSHandler(path string) (ws.Handler, bool)
	Hub() *ws.Hub
}

// Handler bridges net/http onto the dispatcher: it converts each inbound
// http.Request into the neutral request shape, dispatches it, and writes
// the materialised result back. Upgrade requests whose path has a
// registered WebSocket handler are hijacked onto the hub instead.
func (s *Server) Handler(d transport.Dispatcher) http.Handler {
	upgrader := &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wsRouter, ok := d.(WSRouter); ok && websocket.IsWebSocketUpgrade(r) {
			if h, found := wsRouter.WSHandler(r.URL.Path); found {
				conn, err := upgrader.Upgrade(w, r, nil)
				if err != nil {
					s.logger.Debug("websocket upgrade failed", "path", r.URL.Path, "error", err)
					return
				}
				if err := wsRouter.Hub().Serve(r.Context(), h, conn); err != nil {
					s.logger.Debug("websocket session ended", "path", r.URL.Path, "error", err)
				}
				return
			}
		}

		req, err := s.convertRequest(r)
		if err != nil {
			s.logger.Debug("request body read failed",
				"method", r.Method, "path", r.URL.Path, "error", err)
			http.Error(w, "Invalid body", http.StatusBadRequest)
			return
		}

		result := d.Dispatch(r.Context(), req)
		writeResult(w, result)
	})
}

func (s *Server) convertRequest(r *http.Request) (*transport.Request, error) {
	header := transport.NewHeader()
	for name, values := range r.Header {
		for _, value := range values {
			header.Add(name, value)
		}
	}

	var body []byte
	if r.Body != nil {
		reader := io.Reader(r.Body)
		if s.maxBodyBytes > 0 {
			reader = io.LimitReader(r.Body, s.maxBodyBytes)
		}
		b, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		body = b
	}

	return &transport.Request{
		Method: r.Method,
		URL:    r.RequestURI,
		Header: header,
		Body:   body,
	}, nil
}

func writeResult(w http.ResponseWriter, result *transport.Result) {
	out := w.Header()
	result.Header.Each(func(name, value string) {
		out.Add(name, value)
	})
	w.WriteHeader(result.Status)
	_, _ = w.Write(result.Body)
}
