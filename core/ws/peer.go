package ws

import "sync"

// Peer is one connected WebSocket client registered in a Hub. Its send
// methods enqueue frames onto a buffered outbound queue drained by the
// peer's writer goroutine; a full queue drops the frame. Sends to a closed
// peer are silently discarded.
type Peer struct {
	id  string
	hub *Hub

	out  chan Message
	done chan struct{}
	once sync.Once

	conn Conn

	// subs is guarded by hub.mu together with hub.channels so the
	// membership invariant holds under one lock.
	subs map[string]struct{}
}

// ID returns the peer's unique identifier.
func (p *Peer) ID() string {
	return p.id
}

// Send enqueues a text frame to this peer.
func (p *Peer) Send(msg string) {
	p.enqueue(Message{Data: []byte(msg)})
}

// SendBytes enqueues a binary frame to this peer.
func (p *Peer) SendBytes(b []byte) {
	p.enqueue(Message{Data: b, Binary: true})
}

// Subscribe adds the peer to channel, creating the channel on first
// subscriber. Subscribing twice is a no-op.
func (p *Peer) Subscribe(channel string) {
	p.hub.subscribe(p, channel)
}

// Unsubscribe removes the peer from channel. The channel itself is
// dropped once its last subscriber leaves.
func (p *Peer) Unsubscribe(channel string) {
	p.hub.unsubscribe(p, channel)
}

// Subscriptions returns the channels the peer is currently subscribed to,
// in unspecified order.
func (p *Peer) Subscriptions() []string {
	return p.hub.subscriptionsOf(p)
}

// Publish sends a text frame to every subscriber of channel, including
// this peer if subscribed.
func (p *Peer) Publish(channel, msg string) {
	p.hub.publish(channel, Message{Data: []byte(msg)}, "")
}

// PublishBytes sends a binary frame to every subscriber of channel,
// including this peer if subscribed.
func (p *Peer) PublishBytes(channel string, b []byte) {
	p.hub.publish(channel, Message{Data: b, Binary: true}, "")
}

// PublishOthers sends a text frame to every subscriber of channel except
// this peer.
func (p *Peer) PublishOthers(channel, msg string) {
	p.hub.publish(channel, Message{Data: []byte(msg)}, p.id)
}

// Close tears down the peer's connection. The serve loop observes the
// closed transport and runs the normal disconnect path; calling Close
// more than once is safe.
func (p *Peer) Close() {
	p.once.Do(func() {
		close(p.done)
		_ = p.conn.Close()
	})
}

func (p *Peer) enqueue(msg Message) {
	select {
	case <-p.done:
	case p.out <- msg:
	default:
		p.hub.logger.Debug("outbound queue full, frame dropped", "peer", p.id)
	}
}
