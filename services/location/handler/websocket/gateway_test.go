package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adeakim/lincride/internal/pkg/constants"
	"github.com/Adeakim/lincride/internal/pkg/models"
	wsregistry "github.com/Adeakim/lincride/internal/pkg/websocket"
	"github.com/Adeakim/lincride/services/location/mocks"
)

type stubVerifier struct {
	existing map[int64]bool
}

func (s *stubVerifier) TripExists(_ context.Context, id int64) (bool, error) {
	return s.existing[id], nil
}

type gatewayFixture struct {
	registry *wsregistry.Registry
	mockUC   *mocks.MockLocationUC
	conn     *websocket.Conn
}

func setupGatewayTest(t *testing.T) *gatewayFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	registry := wsregistry.NewRegistry()
	mockUC := mocks.NewMockLocationUC(ctrl)
	verifier := &stubVerifier{existing: map[int64]bool{42: true}}
	gw := NewGateway(mockUC, verifier, registry)

	e := echo.New()
	e.GET("/ws/trips", gw.HandleWebSocket)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/trips"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &gatewayFixture{registry: registry, mockUC: mockUC, conn: conn}
}

func (f *gatewayFixture) sendMessage(t *testing.T, msgType, data string) {
	t.Helper()
	payload := `{"type":"` + msgType + `","data":` + data + `}`
	require.NoError(t, f.conn.WriteMessage(websocket.TextMessage, []byte(payload)))
}

func (f *gatewayFixture) readMessage(t *testing.T) models.WSMessage {
	t.Helper()
	require.NoError(t, f.conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, f.conn.ReadJSON(&msg))
	return msg
}

func TestGatewaySubscribeAndReceiveUpdates(t *testing.T) {
	f := setupGatewayTest(t)

	f.sendMessage(t, constants.MessageSubscribe, `{"trip_id":42}`)
	ack := f.readMessage(t)
	assert.Equal(t, constants.MessageSubscribed, ack.Type)
	assert.JSONEq(t, `{"trip_id":42,"status":"success"}`, string(ack.Data))

	topic := constants.TripLocationTopic(42)
	require.Eventually(t, func() bool {
		return f.registry.Count(topic) == 1
	}, time.Second, 10*time.Millisecond)

	f.registry.FanOut(topic, models.WSMessage{
		Type: constants.MessageTripLocationUpdate,
		Data: []byte(`{"trip_id":42,"latitude":6.5,"longitude":3.4}`),
	})

	update := f.readMessage(t)
	assert.Equal(t, constants.MessageTripLocationUpdate, update.Type)
	assert.JSONEq(t, `{"trip_id":42,"latitude":6.5,"longitude":3.4}`, string(update.Data))
}

func TestGatewayUnsubscribe(t *testing.T) {
	f := setupGatewayTest(t)

	f.sendMessage(t, constants.MessageSubscribe, `{"trip_id":42}`)
	assert.Equal(t, constants.MessageSubscribed, f.readMessage(t).Type)

	f.sendMessage(t, constants.MessageUnsubscribe, `{"trip_id":42}`)
	assert.Equal(t, constants.MessageUnsubscribed, f.readMessage(t).Type)

	topic := constants.TripLocationTopic(42)
	require.Eventually(t, func() bool {
		return f.registry.Count(topic) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestGatewaySubscribeUnknownTrip(t *testing.T) {
	f := setupGatewayTest(t)

	f.sendMessage(t, constants.MessageSubscribe, `{"trip_id":999}`)
	msg := f.readMessage(t)
	assert.Equal(t, constants.MessageError, msg.Type)
	assert.Contains(t, string(msg.Data), "999 does not exist")
}

func TestGatewayPublishLocation(t *testing.T) {
	f := setupGatewayTest(t)

	f.mockUC.EXPECT().
		PublishLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update *models.LocationUpdate) error {
			assert.Equal(t, int64(42), update.TripID)
			assert.Equal(t, 6.5244, update.Latitude)
			assert.Equal(t, 3.3792, update.Longitude)
			return nil
		})

	f.sendMessage(t, constants.MessagePublishLocation,
		`{"trip_id":42,"latitude":6.5244,"longitude":3.3792,"timestamp":"2026-08-28T10:00:00Z"}`)

	ack := f.readMessage(t)
	assert.Equal(t, constants.MessageLocationPublished, ack.Type)
	assert.JSONEq(t, `{"trip_id":42,"status":"success"}`, string(ack.Data))
}

func TestGatewayPublishLocationMissingFields(t *testing.T) {
	f := setupGatewayTest(t)

	f.sendMessage(t, constants.MessagePublishLocation, `{"trip_id":42,"latitude":6.5244}`)
	msg := f.readMessage(t)
	assert.Equal(t, constants.MessageError, msg.Type)
	assert.Contains(t, string(msg.Data), "required")
}

func TestGatewayUnknownMessageType(t *testing.T) {
	f := setupGatewayTest(t)

	f.sendMessage(t, "RIDE_A_BIKE", `{}`)
	msg := f.readMessage(t)
	assert.Equal(t, constants.MessageError, msg.Type)
	assert.Contains(t, string(msg.Data), "Unknown message type")
}

func TestGatewayInvalidJSON(t *testing.T) {
	f := setupGatewayTest(t)

	require.NoError(t, f.conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	msg := f.readMessage(t)
	assert.Equal(t, constants.MessageError, msg.Type)
	assert.Contains(t, string(msg.Data), "Invalid message format")
}

func TestGatewayDisconnectClearsSubscriptions(t *testing.T) {
	f := setupGatewayTest(t)

	f.sendMessage(t, constants.MessageSubscribe, `{"trip_id":42}`)
	assert.Equal(t, constants.MessageSubscribed, f.readMessage(t).Type)

	require.NoError(t, f.conn.Close())

	topic := constants.TripLocationTopic(42)
	require.Eventually(t, func() bool {
		return f.registry.Count(topic) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGatewayRejectsPlainHTTP(t *testing.T) {
	registry := wsregistry.NewRegistry()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	gw := NewGateway(mocks.NewMockLocationUC(ctrl), &stubVerifier{}, registry)

	e := echo.New()
	e.GET("/ws/trips", gw.HandleWebSocket)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/ws/trips")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
