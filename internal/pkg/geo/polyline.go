package geo

import (
	"errors"
	"math"
)

// Decode/encode for the Encoded Polyline Algorithm Format used by the
// directions provider: each coordinate delta is stored at 1e-5 degree
// precision as a zig-zag-encoded varint, five bits per character, offset by
// 63, with bit 0x20 marking continuation.

const polylinePrecision = 1e5

// Polyline decode errors. Callers match on these instead of unwinding:
// a malformed geometry string is "no geometry", never a crash.
var (
	ErrEmptyPolyline     = errors.New("geo: empty polyline")
	ErrTruncatedPolyline = errors.New("geo: truncated polyline")
	ErrInvalidPolyline   = errors.New("geo: invalid polyline character")
)

// LatLng is a single WGS 84 coordinate.
type LatLng struct {
	Latitude  float64
	Longitude float64
}

// DecodePolyline decodes an encoded polyline string into its coordinate
// sequence.
func DecodePolyline(encoded string) ([]LatLng, error) {
	if encoded == "" {
		return nil, ErrEmptyPolyline
	}

	var points []LatLng
	var lat, lng int64
	for i := 0; i < len(encoded); {
		dlat, next, err := decodeValue(encoded, i)
		if err != nil {
			return nil, err
		}
		dlng, next, err := decodeValue(encoded, next)
		if err != nil {
			return nil, err
		}
		lat += dlat
		lng += dlng
		points = append(points, LatLng{
			Latitude:  float64(lat) / polylinePrecision,
			Longitude: float64(lng) / polylinePrecision,
		})
		i = next
	}
	return points, nil
}

// decodeValue reads one zig-zag varint starting at index i and returns the
// signed value and the index of the next unread character.
func decodeValue(encoded string, i int) (int64, int, error) {
	var result int64
	var shift uint
	for {
		if i >= len(encoded) {
			return 0, 0, ErrTruncatedPolyline
		}
		b := int64(encoded[i]) - 63
		if b < 0 || b > 63 {
			return 0, 0, ErrInvalidPolyline
		}
		i++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1), i, nil
	}
	return result >> 1, i, nil
}

// EncodePolyline encodes a coordinate sequence into the polyline format.
// It is the exact inverse of DecodePolyline for any sequence decode produced.
func EncodePolyline(points []LatLng) string {
	var out []byte
	var prevLat, prevLng int64
	for _, p := range points {
		lat := int64(math.Round(p.Latitude * polylinePrecision))
		lng := int64(math.Round(p.Longitude * polylinePrecision))
		out = encodeValue(out, lat-prevLat)
		out = encodeValue(out, lng-prevLng)
		prevLat, prevLng = lat, lng
	}
	return string(out)
}

func encodeValue(out []byte, v int64) []byte {
	u := v << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		out = append(out, byte(0x20|(u&0x1f))+63)
		u >>= 5
	}
	return append(out, byte(u)+63)
}
