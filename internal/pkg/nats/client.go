package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Client represents a NATS client for publishing and subscribing to messages
type Client struct {
	conn *nats.Conn
}

// NewClient creates a new NATS client
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// Publish marshals the message as JSON and sends it to the subject
func (c *Client) Publish(subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// ChanQueueSubscribe subscribes to a subject within a queue group, delivering
// messages on the provided channel for a single serialized reader.
func (c *Client) ChanQueueSubscribe(subject, queueGroup string, ch chan *nats.Msg) (*nats.Subscription, error) {
	sub, err := c.conn.ChanQueueSubscribe(subject, queueGroup, ch)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
