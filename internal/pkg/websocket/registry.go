package websocket

import (
	"sync"

	"github.com/Adeakim/lincride/internal/pkg/logger"
	"github.com/Adeakim/lincride/internal/pkg/models"
)

// Subscriber is a connection handle that can receive fan-out messages.
// Gateways register their live connections; tests register fakes.
type Subscriber interface {
	ID() string
	Send(msg models.WSMessage) error
}

// Registry is a concurrency-safe multimap from topic to the set of
// subscribers watching it. It is the single piece of state shared by every
// connection gateway and the broker consumer loop, so every operation must
// tolerate arbitrary interleaving.
type Registry struct {
	mu sync.RWMutex
	// topics maps topic -> subscriber ID -> subscriber.
	topics map[string]map[string]Subscriber
	// memberships is the reverse index: subscriber ID -> set of topics.
	memberships map[string]map[string]struct{}
}

// NewRegistry creates an empty subscription registry
func NewRegistry() *Registry {
	return &Registry{
		topics:      make(map[string]map[string]Subscriber),
		memberships: make(map[string]map[string]struct{}),
	}
}

// Add subscribes sub to topic. Adding an existing member is a no-op.
func (r *Registry) Add(topic string, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.topics[topic]
	if !ok {
		members = make(map[string]Subscriber)
		r.topics[topic] = members
	}
	members[sub.ID()] = sub

	topics, ok := r.memberships[sub.ID()]
	if !ok {
		topics = make(map[string]struct{})
		r.memberships[sub.ID()] = topics
	}
	topics[topic] = struct{}{}
}

// Remove unsubscribes the subscriber from topic. Removing a non-member is a
// no-op.
func (r *Registry) Remove(topic, subID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(topic, subID)
}

func (r *Registry) removeLocked(topic, subID string) {
	if members, ok := r.topics[topic]; ok {
		delete(members, subID)
		if len(members) == 0 {
			delete(r.topics, topic)
		}
	}
	if topics, ok := r.memberships[subID]; ok {
		delete(topics, topic)
		if len(topics) == 0 {
			delete(r.memberships, subID)
		}
	}
}

// ClearAll removes the subscriber from every topic it belongs to. Used on
// disconnect so the gateway need not enumerate its subscriptions.
func (r *Registry) ClearAll(subID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for topic := range r.memberships[subID] {
		if members, ok := r.topics[topic]; ok {
			delete(members, subID)
			if len(members) == 0 {
				delete(r.topics, topic)
			}
		}
	}
	delete(r.memberships, subID)
}

// FanOut delivers msg to every current member of topic. Membership is
// snapshotted before delivery, so concurrent add/remove cannot change the
// recipient set mid-iteration. Send failures are logged, never propagated.
func (r *Registry) FanOut(topic string, msg models.WSMessage) {
	r.mu.RLock()
	members := r.topics[topic]
	snapshot := make([]Subscriber, 0, len(members))
	for _, sub := range members {
		snapshot = append(snapshot, sub)
	}
	r.mu.RUnlock()

	for _, sub := range snapshot {
		if err := sub.Send(msg); err != nil {
			logger.Warn("Failed to deliver fan-out message",
				logger.String("topic", topic),
				logger.String("subscriber_id", sub.ID()),
				logger.Err(err))
		}
	}
}

// Count returns the number of current members of topic.
func (r *Registry) Count(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.topics[topic])
}
