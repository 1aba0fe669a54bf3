package queue

import "testing"

func TestPublishWithoutBrokerIsNoOp(t *testing.T) {
	p := NewProducer("", "events", "", "")
	if p != nil {
		t.Fatal("expected nil producer when no broker is configured")
	}

	// a nil producer must swallow publishes instead of dialing
	if err := p.PublishMessage([]byte("user.registered"), []byte("{}")); err != nil {
		t.Fatalf("publish without broker = %v, want nil", err)
	}
}
