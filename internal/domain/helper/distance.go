package helper

import (
	"MoodSpot-App/internal/domain/model"
	"math"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の大円距離を計算する (km, 小数点以下1桁に丸める)
func HaversineDistance(p1, p2 model.Coordinate) float64 {
	lat1 := p1.Latitude * math.Pi / 180
	lat2 := p2.Latitude * math.Pi / 180
	dLat := (p2.Latitude - p1.Latitude) * math.Pi / 180
	dLng := (p2.Longitude - p1.Longitude) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKm*c*10) / 10
}
