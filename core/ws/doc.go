// Package ws implements the WebSocket pub/sub hub: peer registry,
// per-peer channel subscriptions, and publish fan-out.
//
// A Hub tracks every connected Peer and the channels each peer has
// subscribed to. Serve drives one connection's lifecycle: it registers the
// peer, delivers Open to the handler, pumps inbound frames as Message
// events, and on disconnect delivers Close exactly once before removing
// the peer from every channel.
//
// Outbound frames are enqueued on a per-peer buffer drained by a dedicated
// writer goroutine, so publishes never block on a slow peer; frames to a
// peer whose buffer is full are dropped. Per-peer delivery order follows
// publish order.
//
// An optional Bridge (see RedisBridge) fans publishes out across multiple
// hub instances.
//
// Usage:
//
//	hub := ws.NewHub(ws.WithLogger(log))
//
//	handler := ws.HandlerFuncs{
//		Open: func(ctx context.Context, p *ws.Peer) {
//			p.Subscribe("lobby")
//		},
//		Message: func(ctx context.Context, p *ws.Peer, msg ws.Message) {
//			p.Publish("lobby", msg.Text())
//		},
//	}
//
//	// Per accepted upgrade:
//	err := hub.Serve(ctx, handler, conn)
package ws
