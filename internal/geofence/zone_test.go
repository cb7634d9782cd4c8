package geofence

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// northOf сдвигает точку к северу по меридиану. Вдоль меридиана расстояние на сфере равно R*dLat.
func northOf(p orb.Point, meters float64) orb.Point {
	return orb.Point{p.Lon(), p.Lat() + meters/EarthMeanRadius*180/math.Pi}
}

func TestDistance_MeanRadius(t *testing.T) {
	// один градус меридиана на сфере радиуса 6371008.8 м
	assert.InDelta(t, 111195.08, Distance(orb.Point{0, 0}, orb.Point{0, 1}), 0.01)
	assert.InDelta(t, 1999, Distance(orb.Point{10, 10}, northOf(orb.Point{10, 10}, 1999)), 1e-6)
	assert.Zero(t, Distance(orb.Point{10, 10}, orb.Point{10, 10}))
}

func TestPulseScale_Range(t *testing.T) {
	for phase := 0.0; phase < 4*math.Pi; phase += 0.1 {
		s := PulseScale(phase)
		assert.GreaterOrEqual(t, s, 2.0)
		assert.LessOrEqual(t, s, 3.0)
	}
	assert.InDelta(t, 2.5, PulseScale(0), 1e-9)
	assert.InDelta(t, 3.0, PulseScale(math.Pi/2), 1e-9)
	assert.InDelta(t, 2.0, PulseScale(3*math.Pi/2), 1e-9)
}

func TestHazardZone_Circle(t *testing.T) {
	zone := ZoneFor(sector7())

	poly := zone.Circle(2.5, 16)

	require.Len(t, poly, 1)
	ring := poly[0]
	assert.Len(t, ring, 17)
	assert.True(t, ring.Closed())
	for _, p := range ring {
		assert.InDelta(t, 5000, Distance(zone.Hazard.Location, p), 0.5)
	}
}

func TestHazardZone_PulseDoesNotAffectProximity(t *testing.T) {
	zone := ZoneFor(sector7())
	// точка на 2.5 км: внутри анимированного круга, но вне зоны проверки
	p := northOf(zone.Hazard.Location, 2500)

	assert.False(t, zone.Contains(p))
	assert.Equal(t, BaseRadiusMeters, zone.RadiusMeters)
}

func TestNearbyHazards(t *testing.T) {
	far := sector7()
	far.Location = orb.Point{50, 50}

	out := NearbyHazards(orb.Point{10, 10}, []HazardPoint{sector7(), far})

	require.Len(t, out, 1)
	assert.Equal(t, "Sector 7", out[0].AreaDescription)
}
