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
	"github.com/Adeakim/lincride/services/trips/mocks"
)

func setupMatchHandlerTest(t *testing.T) (*MatchHandler, *mocks.MockTripUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockTripUC(ctrl)
	return NewMatchHandler(mockUC), mockUC, echo.New()
}

func TestFindMatchesHandler(t *testing.T) {
	h, mockUC, e := setupMatchHandlerTest(t)

	mockUC.EXPECT().
		FindMatches(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, query *models.MatchQuery) (*models.MatchResponse, error) {
			assert.Equal(t, 6.81, query.StartingLatitude)
			assert.Equal(t, 3.51, query.StartingLongitude)
			assert.Equal(t, 2, query.SeatsRequired)
			assert.Equal(t, 1000.0, query.RadiusMeters)
			return &models.MatchResponse{
				TotalMatches: 1,
				Matches:      []*models.MatchedTrip{{TripID: 1}},
			}, nil
		})

	target := "/api/trips/match?starting_latitude=6.81&starting_longitude=3.51" +
		"&destination_latitude=7.09&destination_longitude=3.69" +
		"&no_of_seats_required=2&intersection_radius_meters=1000"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.FindMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.MatchResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.TotalMatches)
	require.Len(t, resp.Data.Matches, 1)
	assert.Equal(t, int64(1), resp.Data.Matches[0].TripID)
}

func TestFindMatchesHandlerMissingCoordinates(t *testing.T) {
	h, _, e := setupMatchHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/trips/match?starting_latitude=6.81", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.FindMatches(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
