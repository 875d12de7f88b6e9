package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Adeakim/lincride/services/location/handler/http"
	"github.com/Adeakim/lincride/services/location/handler/websocket"
)

// Handler coordinates the protocol handlers for the location service
type Handler struct {
	locationHandler *http.LocationHandler
	wsGateway       *websocket.Gateway
	natsHandler     *NatsHandler
}

// NewHandler creates and initializes all location handlers. natsHandler may
// be nil when no broker is configured.
func NewHandler(
	locationHandler *http.LocationHandler,
	wsGateway *websocket.Gateway,
	natsHandler *NatsHandler,
) *Handler {
	return &Handler{
		locationHandler: locationHandler,
		wsGateway:       wsGateway,
		natsHandler:     natsHandler,
	}
}

// NatsHandlerRef returns the broker consumer, or nil when running broker-less.
func (h *Handler) NatsHandlerRef() *NatsHandler {
	return h.natsHandler
}

// RegisterRoutes registers the location service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/trips/:id/location", h.locationHandler.GetLastLocation)
	e.GET("/ws/trips", h.wsGateway.HandleWebSocket)
}
