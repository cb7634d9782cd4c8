package geofence

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// BaseRadiusMeters - радиус зоны опасности, используемый при проверке близости
	BaseRadiusMeters = 2000.0

	// допуск на погрешность вычислений с плавающей точкой, граница включительная
	boundaryToleranceMeters = 1e-6

	minPulseScale = 2.0
	maxPulseScale = 3.0
)

// EarthMeanRadius - средний радиус Земли в метрах. orb.EarthRadius экваториальный.
const EarthMeanRadius = 6371008.8

// Distance возвращает расстояние по большому кругу между точками на сфере среднего радиуса
func Distance(a, b orb.Point) float64 {
	return geo.DistanceHaversine(a, b) * EarthMeanRadius / orb.EarthRadius
}

// HazardZone - круг вокруг точечной опасности
type HazardZone struct {
	Hazard       HazardPoint
	RadiusMeters float64
}

// ZoneFor строит зону базового радиуса
func ZoneFor(h HazardPoint) HazardZone {
	return HazardZone{Hazard: h, RadiusMeters: BaseRadiusMeters}
}

// Contains проверяет, что точка не дальше радиуса от центра (по гаверсинусу)
func (z HazardZone) Contains(p orb.Point) bool {
	return Distance(p, z.Hazard.Location) <= z.RadiusMeters+boundaryToleranceMeters
}

// PulseScale возвращает множитель радиуса для анимации, от 2 до 3.
// На проверку близости не влияет.
func PulseScale(phase float64) float64 {
	mid := (minPulseScale + maxPulseScale) / 2
	amp := (maxPulseScale - minPulseScale) / 2
	return mid + amp*math.Sin(phase)
}

// Circle аппроксимирует зону, умноженную на scale, многоугольником из steps вершин
func (z HazardZone) Circle(scale float64, steps int) orb.Polygon {
	if steps < 3 {
		steps = 64
	}
	// PointAtBearingAndDistance считает в метрах экваториального радиуса
	radius := z.RadiusMeters * scale * orb.EarthRadius / EarthMeanRadius
	ring := make(orb.Ring, 0, steps+1)
	for i := 0; i < steps; i++ {
		bearing := 360.0 * float64(i) / float64(steps)
		ring = append(ring, geo.PointAtBearingAndDistance(z.Hazard.Location, bearing, radius))
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}

// NearbyHazards возвращает опасности, в зону которых попадает точка
func NearbyHazards(p orb.Point, hazards []HazardPoint) []HazardPoint {
	var out []HazardPoint
	for _, h := range hazards {
		if ZoneFor(h).Contains(p) {
			out = append(out, h)
		}
	}
	return out
}
