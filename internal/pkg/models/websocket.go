package models

import "encoding/json"

// WSMessage represents a WebSocket message envelope
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// WSAck acknowledges a successful client operation
type WSAck struct {
	TripID int64  `json:"trip_id"`
	Status string `json:"status"`
}

// WSError represents an error message sent over WebSocket
type WSError struct {
	Message string `json:"message"`
}
