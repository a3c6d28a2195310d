package ws

import "context"

// Message is one inbound or outbound WebSocket frame. Binary reports
// whether the frame is a binary frame; otherwise it is a text frame.
type Message struct {
	Data   []byte
	Binary bool
}

// Text returns the frame payload as a string.
func (m Message) Text() string {
	return string(m.Data)
}

// Handler receives the lifecycle events of one peer. OnOpen is delivered
// exactly once before any message, OnMessage once per inbound frame, and
// OnClose exactly once after the connection ends. All three are invoked
// from the peer's serve goroutine, never concurrently for the same peer.
type Handler interface {
	OnOpen(ctx context.Context, p *Peer)
	OnMessage(ctx context.Context, p *Peer, msg Message)
	OnClose(ctx context.Context, p *Peer)
}

// HandlerFuncs adapts plain functions to the Handler interface. Nil fields
// are skipped.
type HandlerFuncs struct {
	Open    func(ctx context.Context, p *Peer)
	Message func(ctx context.Context, p *Peer, msg Message)
	Close   func(ctx context.Context, p *Peer)
}

func (h HandlerFuncs) OnOpen(ctx context.Context, p *Peer) {
	if h.Open != nil {
		h.Open(ctx, p)
	}
}

func (h HandlerFuncs) OnMessage(ctx context.Context, p *Peer, msg Message) {
	if h.Message != nil {
		h.Message(ctx, p, msg)
	}
}

func (h HandlerFuncs) OnClose(ctx context.Context, p *Peer) {
	if h.Close != nil {
		h.Close(ctx, p)
	}
}
