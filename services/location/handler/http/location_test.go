package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adeakim/lincride/internal/pkg/models"
	"github.com/Adeakim/lincride/services/location"
	"github.com/Adeakim/lincride/services/location/mocks"
)

func setupLocationHandlerTest(t *testing.T) (*LocationHandler, *mocks.MockLocationUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockLocationUC(ctrl)
	return NewLocationHandler(mockUC), mockUC, echo.New()
}

func TestGetLastLocation(t *testing.T) {
	h, mockUC, e := setupLocationHandlerTest(t)

	mockUC.EXPECT().
		LastLocation(gomock.Any(), int64(42)).
		Return(&models.TripLocation{TripID: 42, Latitude: 6.5, Longitude: 3.4}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/trips/42/location", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.GetLastLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.TripLocation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Data.TripID)
	assert.Equal(t, 6.5, resp.Data.Latitude)
}

func TestGetLastLocationNotFound(t *testing.T) {
	h, mockUC, e := setupLocationHandlerTest(t)

	mockUC.EXPECT().
		LastLocation(gomock.Any(), int64(99)).
		Return(nil, location.ErrLocationNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/trips/99/location", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.GetLastLocation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetLastLocationBadID(t *testing.T) {
	h, _, e := setupLocationHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/trips/abc/location", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetLastLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
