package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/Adeakim/lincride/internal/pkg/constants"
	"github.com/Adeakim/lincride/internal/pkg/logger"
	"github.com/Adeakim/lincride/internal/pkg/models"
	natspkg "github.com/Adeakim/lincride/internal/pkg/nats"
)

// UpdateFanOuter delivers a location update to the subscribers of its trip.
type UpdateFanOuter interface {
	FanOutUpdate(update *models.LocationUpdate)
}

// NatsHandler consumes location updates from the broker and fans them out to
// WebSocket subscribers. A single goroutine drains the subscription channel,
// so updates for a trip are delivered in the order they were consumed.
type NatsHandler struct {
	fanOuter   UpdateFanOuter
	natsClient *natspkg.Client
	msgs       chan *nats.Msg
	sub        *nats.Subscription
}

// NewNatsHandler creates a new location broker consumer
func NewNatsHandler(fanOuter UpdateFanOuter, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		fanOuter:   fanOuter,
		natsClient: natsClient,
		msgs:       make(chan *nats.Msg, 256),
	}
}

// Start subscribes to the location update subject as part of a queue group,
// so horizontally scaled instances split the stream instead of duplicating
// deliveries.
func (h *NatsHandler) Start() error {
	sub, err := h.natsClient.ChanQueueSubscribe(
		constants.SubjectTripLocation,
		constants.QueueTripLocation,
		h.msgs,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to location updates: %w", err)
	}
	h.sub = sub

	logger.Info("Subscribed to location updates",
		logger.String("subject", constants.SubjectTripLocation),
		logger.String("queue", constants.QueueTripLocation))
	return nil
}

// Run drains the subscription channel until ctx is cancelled or the
// subscription channel closes. Malformed messages are logged and skipped;
// they never stop the loop.
func (h *NatsHandler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("Location consumer stopping", logger.Err(ctx.Err()))
			return
		case msg, ok := <-h.msgs:
			if !ok {
				logger.Warn("Location update channel closed, consumer stopping")
				return
			}
			h.handleLocationUpdate(msg.Data)
		}
	}
}

// Stop unsubscribes from the broker, closing the message channel.
func (h *NatsHandler) Stop() {
	if h.sub != nil {
		if err := h.sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe location consumer", logger.Err(err))
		}
	}
}

func (h *NatsHandler) handleLocationUpdate(data []byte) {
	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		logger.Warn("Discarding malformed location update from broker", logger.Err(err))
		return
	}

	h.fanOuter.FanOutUpdate(&update)
}
