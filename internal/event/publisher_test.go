package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKey(t *testing.T) {
	if got := Key(KindSession, "created", 12); got != "session.created.12" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestKafkaPublisherWritesJSON(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	payload := map[string]any{"id": 4, "name": "Movement Berkeley"}
	if err := p.Publish(context.Background(), Key(KindGym, "created", 4), payload); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	if string(w.msgs[0].Key) != "gym.created.4" {
		t.Fatalf("unexpected key %q", w.msgs[0].Key)
	}
	var decoded map[string]any
	if err := json.Unmarshal(w.msgs[0].Value, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if decoded["name"] != "Movement Berkeley" {
		t.Fatalf("unexpected payload %v", decoded)
	}

	if err := p.Close(); err != nil || !w.closed {
		t.Fatalf("expected writer to be closed")
	}
}

func TestKafkaPublisherPropagatesWriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}}

	if err := p.Publish(context.Background(), "user.created.1", struct{}{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestKafkaPublisherRejectsUnencodablePayload(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	if err := p.Publish(context.Background(), "user.created.1", make(chan int)); err == nil {
		t.Fatalf("expected marshal error")
	}
	if len(w.msgs) != 0 {
		t.Fatalf("nothing should be written on marshal failure")
	}
}
