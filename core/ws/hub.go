package ws

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// DefaultSendBuffer is the per-peer outbound queue capacity.
const DefaultSendBuffer = 32

// Conn is the minimal framed connection the hub drives. The gorilla
// *websocket.Conn satisfies it directly.
type Conn interface {
	ReadMessage() (messageType int, data []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Bridge fans a publish out across hub instances. exceptID names the
// originating peer to exclude from delivery; empty means deliver to all.
type Bridge interface {
	Publish(channel string, msg Message, exceptID string) error
}

// Hub tracks connected peers and their channel subscriptions and performs
// publish fan-out. A peer is a member of channels[c] iff c is in that
// peer's subscription set; both sides are updated under one lock.
type Hub struct {
	mu       sync.RWMutex
	peers    map[string]*Peer
	channels map[string]map[string]*Peer

	logger     *slog.Logger
	bridge     Bridge
	sendBuffer int
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(h *Hub) {
		if log != nil {
			h.logger = log
		}
	}
}

// WithSendBuffer sets the per-peer outbound queue capacity.
func WithSendBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.sendBuffer = n
		}
	}
}

// WithBridge attaches a cross-instance publish bridge. Publishes are then
// routed through the bridge only; local delivery happens when the bridge
// relays the message back (see RedisBridge.Run).
func WithBridge(b Bridge) Option {
	return func(h *Hub) {
		h.bridge = b
	}
}

// NewHub creates an empty hub.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		peers:      make(map[string]*Peer),
		channels:   make(map[string]map[string]*Peer),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		sendBuffer: DefaultSendBuffer,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Serve drives one connection until it closes or ctx is cancelled. It
// registers a new peer, starts the writer goroutine, delivers Open, pumps
// inbound frames to the handler, and on exit delivers Close exactly once
// before unsubscribing and deregistering the peer. It returns nil on a
// normal close and the read error otherwise.
func (h *Hub) Serve(ctx context.Context, handler Handler, conn Conn) error {
	p := &Peer{
		id:   uuid.NewString(),
		hub:  h,
		out:  make(chan Message, h.sendBuffer),
		done: make(chan struct{}),
		conn: conn,
		subs: make(map[string]struct{}),
	}

	h.mu.Lock()
	h.peers[p.id] = p
	h.mu.Unlock()
	h.logger.Debug("peer connected", "peer", p.id)

	stop := context.AfterFunc(ctx, p.Close)
	defer stop()

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for {
			select {
			case <-p.done:
				return
			case msg := <-p.out:
				mt := websocket.TextMessage
				if msg.Binary {
					mt = websocket.BinaryMessage
				}
				if err := conn.WriteMessage(mt, msg.Data); err != nil {
					h.logger.Debug("write failed", "peer", p.id, "error", err)
					p.Close()
					return
				}
			}
		}
	}()

	handler.OnOpen(ctx, p)

	var readErr error
	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			if !isExpectedClose(err) {
				readErr = err
			}
			break
		}
		switch mt {
		case websocket.TextMessage:
			handler.OnMessage(ctx, p, Message{Data: data})
		case websocket.BinaryMessage:
			handler.OnMessage(ctx, p, Message{Data: data, Binary: true})
		}
	}

	p.Close()
	<-writerDone

	handler.OnClose(ctx, p)
	h.remove(p)
	h.logger.Debug("peer disconnected", "peer", p.id, "error", readErr)
	return readErr
}

// Publish sends a text frame to every subscriber of channel.
func (h *Hub) Publish(channel, msg string) {
	h.publish(channel, Message{Data: []byte(msg)}, "")
}

// PublishBytes sends a binary frame to every subscriber of channel.
func (h *Hub) PublishBytes(channel string, b []byte) {
	h.publish(channel, Message{Data: b, Binary: true}, "")
}

// PeerCount returns the number of connected peers.
func (h *Hub) PeerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Channels returns the names of channels with at least one subscriber, in
// unspecified order.
func (h *Hub) Channels() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.channels))
	for name := range h.channels {
		names = append(names, name)
	}
	return names
}

func (h *Hub) publish(channel string, msg Message, exceptID string) {
	if h.bridge != nil {
		if err := h.bridge.Publish(channel, msg, exceptID); err != nil {
			h.logger.Error("bridge publish failed", "channel", channel, "error", err)
		}
		return
	}
	h.deliver(channel, msg, exceptID)
}

// deliver enqueues msg to every local subscriber of channel except the
// peer named by exceptID. The subscriber set is snapshotted under the read
// lock; enqueueing happens outside it so a slow peer cannot hold the hub.
func (h *Hub) deliver(channel string, msg Message, exceptID string) {
	h.mu.RLock()
	subs := h.channels[channel]
	targets := make([]*Peer, 0, len(subs))
	for id, p := range subs {
		if id == exceptID {
			continue
		}
		targets = append(targets, p)
	}
	h.mu.RUnlock()

	for _, p := range targets {
		p.enqueue(msg)
	}
}

func (h *Hub) subscribe(p *Peer, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, connected := h.peers[p.id]; !connected {
		return
	}
	set := h.channels[channel]
	if set == nil {
		set = make(map[string]*Peer)
		h.channels[channel] = set
	}
	set[p.id] = p
	p.subs[channel] = struct{}{}
}

func (h *Hub) unsubscribe(p *Peer, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.channels[channel]; ok {
		delete(set, p.id)
		if len(set) == 0 {
			delete(h.channels, channel)
		}
	}
	delete(p.subs, channel)
}

func (h *Hub) subscriptionsOf(p *Peer) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	channels := make([]string, 0, len(p.subs))
	for channel := range p.subs {
		channels = append(channels, channel)
	}
	return channels
}

func (h *Hub) remove(p *Peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for channel := range p.subs {
		if set, ok := h.channels[channel]; ok {
			delete(set, p.id)
			if len(set) == 0 {
				delete(h.channels, channel)
			}
		}
	}
	clear(p.subs)
	delete(h.peers, p.id)
}

func isExpectedClose(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, fs.ErrClosed) {
		return true
	}
	if websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived,
	) {
		return true
	}
	return false
}
