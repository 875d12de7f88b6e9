package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000.0

// RoutePoint represents a point on a route with its position along the route.
type RoutePoint struct {
	Latitude          float64
	Longitude         float64
	DistanceFromStart float64 // meters from the start of the route
}

// NearestPointResult is the result of finding the nearest route point to a
// query coordinate.
type NearestPointResult struct {
	Point           RoutePoint
	DistanceToPoint float64 // meters from the query point to the route point
	RouteIndex      int     // index within the decoded route
}

// Haversine returns the great-circle distance in meters between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// FindNearestPoint returns the route vertex nearest to the query coordinate,
// or nil for an empty route. Ties resolve to the lowest index. This is a
// nearest-vertex search, not a nearest-point-on-segment projection: route
// points come from a densely sampled polyline, so the approximation holds.
func FindNearestPoint(queryLat, queryLon float64, route []LatLng) *NearestPointResult {
	if len(route) == 0 {
		return nil
	}

	distancesFromStart := make([]float64, len(route))
	for i := 1; i < len(route); i++ {
		prev, curr := route[i-1], route[i]
		segment := Haversine(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude)
		distancesFromStart[i] = distancesFromStart[i-1] + segment
	}

	minDistance := math.Inf(1)
	nearestIndex := 0
	for i, p := range route {
		d := Haversine(queryLat, queryLon, p.Latitude, p.Longitude)
		if d < minDistance {
			minDistance = d
			nearestIndex = i
		}
	}

	nearest := route[nearestIndex]
	return &NearestPointResult{
		Point: RoutePoint{
			Latitude:          nearest.Latitude,
			Longitude:         nearest.Longitude,
			DistanceFromStart: distancesFromStart[nearestIndex],
		},
		DistanceToPoint: minDistance,
		RouteIndex:      nearestIndex,
	}
}

// RouteDistance returns the along-route distance in meters between two route
// indices, summing consecutive segments. Returns 0 when startIndex >= endIndex.
func RouteDistance(route []LatLng, startIndex, endIndex int) float64 {
	if startIndex >= endIndex {
		return 0
	}
	if endIndex >= len(route) {
		endIndex = len(route) - 1
	}

	var total float64
	for i := startIndex; i < endIndex; i++ {
		total += Haversine(route[i].Latitude, route[i].Longitude,
			route[i+1].Latitude, route[i+1].Longitude)
	}
	return total
}

// ETAMinutes converts a distance to travel minutes at the given average
// speed. Returns 0 for non-positive speeds instead of dividing by zero.
func ETAMinutes(distanceMeters, speedKmh float64) float64 {
	if speedKmh <= 0 {
		return 0
	}
	metersPerMinute := speedKmh * 1000 / 60
	return distanceMeters / metersPerMinute
}
