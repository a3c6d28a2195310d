package ws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultBridgePrefix namespaces hub channels inside the Redis keyspace.
const DefaultBridgePrefix = "ws:"

// ErrMalformedFrame indicates a relayed payload that does not carry the
// bridge frame envelope.
var ErrMalformedFrame = errors.New("malformed bridge frame")

// RedisBridge fans publishes out across hub instances through Redis
// pub/sub. Attach it to a hub with WithBridge and start the relay with
// Run; every publish then goes to Redis, and each instance's relay
// delivers it to its local subscribers.
type RedisBridge struct {
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
}

// BridgeOption configures a RedisBridge.
type BridgeOption func(*RedisBridge)

// WithBridgePrefix overrides the Redis channel prefix.
func WithBridgePrefix(prefix string) BridgeOption {
	return func(b *RedisBridge) {
		b.prefix = prefix
	}
}

// WithBridgeLogger sets the structured logger. The default discards
// everything.
func WithBridgeLogger(log *slog.Logger) BridgeOption {
	return func(b *RedisBridge) {
		if log != nil {
			b.logger = log
		}
	}
}

// NewRedisBridge creates a bridge over the given Redis client.
func NewRedisBridge(client redis.UniversalClient, opts ...BridgeOption) *RedisBridge {
	b := &RedisBridge{
		client: client,
		prefix: DefaultBridgePrefix,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish encodes msg and publishes it to the prefixed Redis channel.
func (b *RedisBridge) Publish(channel string, msg Message, exceptID string) error {
	payload, err := encodeFrame(msg, exceptID)
	if err != nil {
		return err
	}
	if err := b.client.Publish(context.Background(), b.prefix+channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %q: %w", channel, err)
	}
	return nil
}

// Run subscribes to the bridge's prefixed channel space and relays every
// received frame to hub's local subscribers. It blocks until ctx is
// cancelled or the subscription fails.
func (b *RedisBridge) Run(ctx context.Context, hub *Hub) error {
	sub := b.client.PSubscribe(ctx, b.prefix+"*")
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			msg, exceptID, err := decodeFrame([]byte(m.Payload))
			if err != nil {
				b.logger.Debug("dropping relayed frame", "channel", m.Channel, "error", err)
				continue
			}
			hub.deliver(strings.TrimPrefix(m.Channel, b.prefix), msg, exceptID)
		}
	}
}

// Frame envelope: one flag byte (bit 0 = binary), one origin-id length
// byte, the origin peer id, then the payload.
func encodeFrame(msg Message, exceptID string) ([]byte, error) {
	if len(exceptID) > 255 {
		return nil, fmt.Errorf("%w: origin id too long", ErrMalformedFrame)
	}
	var flags byte
	if msg.Binary {
		flags |= 1
	}
	frame := make([]byte, 0, 2+len(exceptID)+len(msg.Data))
	frame = append(frame, flags, byte(len(exceptID)))
	frame = append(frame, exceptID...)
	frame = append(frame, msg.Data...)
	return frame, nil
}

func decodeFrame(frame []byte) (Message, string, error) {
	if len(frame) < 2 {
		return Message{}, "", ErrMalformedFrame
	}
	idLen := int(frame[1])
	if len(frame) < 2+idLen {
		return Message{}, "", ErrMalformedFrame
	}
	return Message{
		Data:   frame[2+idLen:],
		Binary: frame[0]&1 != 0,
	}, string(frame[2 : 2+idLen]), nil
}
