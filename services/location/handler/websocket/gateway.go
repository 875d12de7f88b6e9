package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/Adeakim/lincride/internal/pkg/constants"
	"github.com/Adeakim/lincride/internal/pkg/logger"
	"github.com/Adeakim/lincride/internal/pkg/models"
	wsregistry "github.com/Adeakim/lincride/internal/pkg/websocket"
	"github.com/Adeakim/lincride/services/location"
)

// TripVerifier checks that a trip referenced by a client actually exists.
type TripVerifier interface {
	TripExists(ctx context.Context, id int64) (bool, error)
}

// Gateway upgrades HTTP requests to WebSocket connections and dispatches the
// trip location message protocol.
type Gateway struct {
	locationUC   location.LocationUC
	tripVerifier TripVerifier
	registry     *wsregistry.Registry
	upgrader     websocket.Upgrader
}

// NewGateway creates a new WebSocket connection gateway
func NewGateway(locationUC location.LocationUC, tripVerifier TripVerifier, registry *wsregistry.Registry) *Gateway {
	return &Gateway{
		locationUC:   locationUC,
		tripVerifier: tripVerifier,
		registry:     registry,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// client is one live WebSocket connection. Writes are serialized with a
// mutex because both the reader goroutine (acks, errors) and registry
// fan-outs send to the same connection.
type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) ID() string { return c.id }

func (c *client) Send(msg models.WSMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// HandleWebSocket upgrades the request and runs the connection's message
// loop. All of the connection's subscriptions are cleared when it ends, for
// any reason.
func (g *Gateway) HandleWebSocket(c echo.Context) error {
	conn, err := g.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := &client{
		id:   uuid.New().String(),
		conn: conn,
	}

	logger.Info("WebSocket client connected", logger.String("client_id", cl.id))

	defer func() {
		g.registry.ClearAll(cl.id)
		conn.Close()
		logger.Info("WebSocket client disconnected", logger.String("client_id", cl.id))
	}()

	g.messageLoop(c.Request().Context(), cl)
	return nil
}

// messageLoop reads and dispatches messages until the connection errors or
// closes. Protocol errors are reported to the client; only read failures end
// the loop.
func (g *Gateway) messageLoop(ctx context.Context, cl *client) {
	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read failed",
					logger.String("client_id", cl.id),
					logger.Err(err))
			}
			return
		}

		var msg models.WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			g.sendError(cl, "Invalid message format")
			continue
		}

		g.dispatch(ctx, cl, msg)
	}
}

func (g *Gateway) dispatch(ctx context.Context, cl *client, msg models.WSMessage) {
	switch msg.Type {
	case constants.MessagePublishLocation:
		g.handlePublishLocation(ctx, cl, msg.Data)
	case constants.MessageSubscribe:
		g.handleSubscribe(ctx, cl, msg.Data)
	case constants.MessageUnsubscribe:
		g.handleUnsubscribe(cl, msg.Data)
	default:
		g.sendError(cl, fmt.Sprintf("Unknown message type: %s", msg.Type))
	}
}

// publishRequest carries a driver's location report. Pointer fields
// distinguish a missing value from a legitimate zero coordinate.
type publishRequest struct {
	TripID    *int64          `json:"trip_id"`
	Latitude  *float64        `json:"latitude"`
	Longitude *float64        `json:"longitude"`
	Timestamp json.RawMessage `json:"timestamp"`
}

type subscribeRequest struct {
	TripID *int64 `json:"trip_id"`
}

func (g *Gateway) handlePublishLocation(ctx context.Context, cl *client, data json.RawMessage) {
	var req publishRequest
	if err := json.Unmarshal(data, &req); err != nil {
		g.sendError(cl, "Invalid location payload")
		return
	}
	if req.TripID == nil || req.Latitude == nil || req.Longitude == nil {
		g.sendError(cl, "trip_id, latitude and longitude are required")
		return
	}

	if !g.verifyTrip(ctx, cl, *req.TripID) {
		return
	}

	update := &models.LocationUpdate{
		TripID:    *req.TripID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timestamp: req.Timestamp,
	}
	if err := g.locationUC.PublishLocation(ctx, update); err != nil {
		g.sendError(cl, err.Error())
		return
	}

	g.sendAck(cl, constants.MessageLocationPublished, *req.TripID)
}

func (g *Gateway) handleSubscribe(ctx context.Context, cl *client, data json.RawMessage) {
	var req subscribeRequest
	if err := json.Unmarshal(data, &req); err != nil || req.TripID == nil {
		g.sendError(cl, "trip_id is required")
		return
	}

	if !g.verifyTrip(ctx, cl, *req.TripID) {
		return
	}

	g.registry.Add(constants.TripLocationTopic(*req.TripID), cl)
	g.sendAck(cl, constants.MessageSubscribed, *req.TripID)
}

func (g *Gateway) handleUnsubscribe(cl *client, data json.RawMessage) {
	var req subscribeRequest
	if err := json.Unmarshal(data, &req); err != nil || req.TripID == nil {
		g.sendError(cl, "trip_id is required")
		return
	}

	// Unsubscribing is idempotent, no existence check needed.
	g.registry.Remove(constants.TripLocationTopic(*req.TripID), cl.id)
	g.sendAck(cl, constants.MessageUnsubscribed, *req.TripID)
}

// verifyTrip reports whether the trip exists, sending the client an error
// when it does not or the check fails.
func (g *Gateway) verifyTrip(ctx context.Context, cl *client, tripID int64) bool {
	exists, err := g.tripVerifier.TripExists(ctx, tripID)
	if err != nil {
		logger.Error("Trip existence check failed",
			logger.Int64("trip_id", tripID),
			logger.Err(err))
		g.sendError(cl, "Unable to verify trip")
		return false
	}
	if !exists {
		g.sendError(cl, fmt.Sprintf("Trip %d does not exist", tripID))
		return false
	}
	return true
}

func (g *Gateway) sendAck(cl *client, msgType string, tripID int64) {
	data, _ := json.Marshal(models.WSAck{TripID: tripID, Status: constants.StatusSuccess})
	g.send(cl, models.WSMessage{Type: msgType, Data: data})
}

func (g *Gateway) sendError(cl *client, message string) {
	data, _ := json.Marshal(models.WSError{Message: message})
	g.send(cl, models.WSMessage{Type: constants.MessageError, Data: data})
}

func (g *Gateway) send(cl *client, msg models.WSMessage) {
	if err := cl.Send(msg); err != nil {
		logger.Warn("Failed to write WebSocket message",
			logger.String("client_id", cl.id),
			logger.Err(err))
	}
}
