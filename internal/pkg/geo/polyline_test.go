package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePolyline(t *testing.T) {
	// Reference example from the polyline format documentation.
	points, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)

	expected := []LatLng{
		{Latitude: 38.5, Longitude: -120.2},
		{Latitude: 40.7, Longitude: -120.95},
		{Latitude: 43.252, Longitude: -126.453},
	}
	for i, p := range expected {
		assert.InDelta(t, p.Latitude, points[i].Latitude, 1e-5)
		assert.InDelta(t, p.Longitude, points[i].Longitude, 1e-5)
	}
}

func TestDecodePolyline_SinglePoint(t *testing.T) {
	points, err := DecodePolyline(EncodePolyline([]LatLng{{Latitude: -6.175392, Longitude: 106.827153}}))
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.InDelta(t, -6.175392, points[0].Latitude, 1e-5)
	assert.InDelta(t, 106.827153, points[0].Longitude, 1e-5)
}

func TestDecodePolyline_Empty(t *testing.T) {
	points, err := DecodePolyline("")
	assert.ErrorIs(t, err, ErrEmptyPolyline)
	assert.Nil(t, points)
}

func TestDecodePolyline_Truncated(t *testing.T) {
	// A continuation bit with no following character.
	_, err := DecodePolyline("_p~iF~ps|U_")
	assert.ErrorIs(t, err, ErrTruncatedPolyline)
}

func TestDecodePolyline_InvalidCharacter(t *testing.T) {
	_, err := DecodePolyline("_p~iF\x01ps|U")
	assert.ErrorIs(t, err, ErrInvalidPolyline)
}

func TestEncodePolyline_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		points []LatLng
	}{
		{
			name: "documented example",
			points: []LatLng{
				{Latitude: 38.5, Longitude: -120.2},
				{Latitude: 40.7, Longitude: -120.95},
				{Latitude: 43.252, Longitude: -126.453},
			},
		},
		{
			name: "crosses the antimeridian",
			points: []LatLng{
				{Latitude: 0.0, Longitude: 179.9},
				{Latitude: 0.1, Longitude: -179.9},
			},
		},
		{
			name: "dense city route",
			points: []LatLng{
				{Latitude: 6.45407, Longitude: 3.39467},
				{Latitude: 6.45510, Longitude: 3.39601},
				{Latitude: 6.45623, Longitude: 3.39755},
				{Latitude: 6.45701, Longitude: 3.39892},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodePolyline(tt.points)
			decoded, err := DecodePolyline(encoded)
			require.NoError(t, err)
			require.Len(t, decoded, len(tt.points))
			for i := range tt.points {
				assert.InDelta(t, tt.points[i].Latitude, decoded[i].Latitude, 1e-5)
				assert.InDelta(t, tt.points[i].Longitude, decoded[i].Longitude, 1e-5)
			}
		})
	}
}

func TestEncodePolyline_ByteExactInverse(t *testing.T) {
	original := "_p~iF~ps|U_ulLnnqC_mqNvxq`@"
	decoded, err := DecodePolyline(original)
	require.NoError(t, err)
	assert.Equal(t, original, EncodePolyline(decoded))
}
