package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"wallet-engine/internal/core/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *captureWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &captureWriter{}
	p := &KafkaPublisher{writer: w}
	at := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	err := p.Publish(context.Background(), domain.StateEvent{
		Type:      domain.EventEscrowUpdated,
		AccountID: "alice",
		At:        at,
		Payload:   map[string]string{"id": "esc-1"},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, []byte("alice"), msg.Key)
	assert.Equal(t, at, msg.Time)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("escrow_updated"), msg.Headers[0].Value)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "escrow_updated", decoded["type"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_Publish_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &captureWriter{err: errors.New("broker unavailable")}}

	err := p.Publish(context.Background(), domain.StateEvent{Type: domain.EventBalancesChanged, AccountID: "alice"})
	assert.ErrorContains(t, err, "kafka write")
}
