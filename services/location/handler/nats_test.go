package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adeakim/lincride/internal/pkg/models"
)

type recordingFanOuter struct {
	mu      sync.Mutex
	updates []*models.LocationUpdate
}

func (r *recordingFanOuter) FanOutUpdate(update *models.LocationUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, update)
}

func (r *recordingFanOuter) received() []*models.LocationUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.LocationUpdate, len(r.updates))
	copy(out, r.updates)
	return out
}

func TestNatsHandlerRunFansOutUpdates(t *testing.T) {
	fanOuter := &recordingFanOuter{}
	h := NewNatsHandler(fanOuter, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	h.msgs <- &nats.Msg{Data: []byte(`{"trip_id":42,"latitude":6.5,"longitude":3.4}`)}
	h.msgs <- &nats.Msg{Data: []byte(`{"trip_id":42,"latitude":6.6,"longitude":3.5}`)}

	require.Eventually(t, func() bool {
		return len(fanOuter.received()) == 2
	}, time.Second, 10*time.Millisecond)

	updates := fanOuter.received()
	assert.Equal(t, int64(42), updates[0].TripID)
	assert.Equal(t, 6.5, updates[0].Latitude)
	// Single reader preserves consumption order.
	assert.Equal(t, 6.6, updates[1].Latitude)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop on context cancellation")
	}
}

func TestNatsHandlerSkipsMalformedMessages(t *testing.T) {
	fanOuter := &recordingFanOuter{}
	h := NewNatsHandler(fanOuter, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	h.msgs <- &nats.Msg{Data: []byte("{not json")}
	h.msgs <- &nats.Msg{Data: []byte(`{"trip_id":7,"latitude":1,"longitude":2}`)}

	require.Eventually(t, func() bool {
		return len(fanOuter.received()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(7), fanOuter.received()[0].TripID)
}

func TestNatsHandlerStopsOnClosedChannel(t *testing.T) {
	h := NewNatsHandler(&recordingFanOuter{}, nil)

	done := make(chan struct{})
	go func() {
		h.Run(context.Background())
		close(done)
	}()

	close(h.msgs)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop on channel close")
	}
}
