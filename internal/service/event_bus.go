package service

import (
	"context"
	"sync"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	defaultSubscriberBuffer = 64
	defaultOutboundBuffer   = 1024
	externalPublishTimeout  = 5 * time.Second
)

// EventBus fans state events out to per-account subscribers and, optionally,
// to an external publisher. Slow subscribers lose events rather than block commits.
//
// External delivery runs on its own goroutine in publish order, so a slow
// broker delays the stream but never the caller.
type EventBus struct {
	mu        sync.RWMutex
	subs      map[uint64]subscriber
	next      uint64
	buffer    int
	publisher ports.EventPublisher // optional
	outbound  chan domain.StateEvent
	closed    bool
	done      chan struct{}
	timeout   time.Duration
	log       zerolog.Logger
}

type subscriber struct {
	accountID string
	ch        chan domain.StateEvent
}

// NewEventBus creates a bus. publisher may be nil.
func NewEventBus(publisher ports.EventPublisher, log zerolog.Logger) *EventBus {
	b := &EventBus{
		subs:      make(map[uint64]subscriber),
		buffer:    defaultSubscriberBuffer,
		publisher: publisher,
		done:      make(chan struct{}),
		timeout:   externalPublishTimeout,
		log:       log,
	}
	if publisher == nil {
		close(b.done)
		return b
	}
	b.outbound = make(chan domain.StateEvent, defaultOutboundBuffer)
	go b.forward()
	return b
}

// Close stops accepting external events and waits until the queued ones
// have been handed to the publisher. Subscribers are unaffected.
func (b *EventBus) Close() {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		if b.outbound != nil {
			close(b.outbound)
		}
	}
	b.mu.Unlock()
	<-b.done
}

func (b *EventBus) forward() {
	defer close(b.done)
	for ev := range b.outbound {
		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		if err := b.publisher.Publish(ctx, ev); err != nil {
			b.log.Warn().Err(err).Str("event", string(ev.Type)).Msg("failed to publish event externally")
		}
		cancel()
	}
}

// Subscribe registers for events of accountID. The returned func unsubscribes
// and closes the channel; it is safe to call more than once.
func (b *EventBus) Subscribe(accountID string) (<-chan domain.StateEvent, func()) {
	ch := make(chan domain.StateEvent, b.buffer)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = subscriber{accountID: accountID, ch: ch}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// Publish delivers ev to matching subscribers and queues it for the external
// publisher. It never blocks on either.
func (b *EventBus) Publish(_ context.Context, ev domain.StateEvent) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	b.mu.RLock()
	for _, s := range b.subs {
		if s.accountID != ev.AccountID {
			continue
		}
		select {
		case s.ch <- ev:
		default:
			b.log.Debug().Str("account_id", ev.AccountID).Str("event", string(ev.Type)).Msg("subscriber buffer full, dropping event")
		}
	}
	if b.outbound != nil && !b.closed {
		select {
		case b.outbound <- ev:
		default:
			b.log.Warn().Str("account_id", ev.AccountID).Str("event", string(ev.Type)).Msg("external publish queue full, dropping event")
		}
	}
	b.mu.RUnlock()
}

// Subscribers returns the number of live subscriptions.
func (b *EventBus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
