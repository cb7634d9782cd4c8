package geofence

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

var ErrInvalidRing = errors.New("polygon ring needs at least 3 distinct vertices")

// RestrictedArea - запретная зона: полигон без дыр и имя
type RestrictedArea struct {
	Name    string
	Polygon orb.Polygon
}

// NewRestrictedArea создает зону, замыкая кольцо, если первая и последняя точки различаются
func NewRestrictedArea(name string, ring orb.Ring) (RestrictedArea, error) {
	if len(ring) == 0 {
		return RestrictedArea{}, fmt.Errorf("area %q: %w", name, ErrInvalidRing)
	}

	closed := make(orb.Ring, len(ring), len(ring)+1)
	copy(closed, ring)
	if !closed.Closed() {
		closed = append(closed, closed[0])
	}
	// замкнутое кольцо из 3 различных вершин содержит 4 точки
	if len(closed) < 4 {
		return RestrictedArea{}, fmt.Errorf("area %q: %w", name, ErrInvalidRing)
	}

	return RestrictedArea{
		Name:    name,
		Polygon: orb.Polygon{closed},
	}, nil
}

// Contains проверяет попадание точки в полигон (ray casting orb/planar).
// Точки на границе библиотека считает внутренними.
func (a RestrictedArea) Contains(p orb.Point) bool {
	return planar.PolygonContains(a.Polygon, p)
}

// DisplayName - имя для уведомлений, если оно не задано в данных
func (a RestrictedArea) DisplayName() string {
	if a.Name == "" {
		return "Restricted Area"
	}
	return a.Name
}

// ContainingAreas возвращает зоны, содержащие точку, в исходном порядке
func ContainingAreas(p orb.Point, areas []RestrictedArea) []RestrictedArea {
	var out []RestrictedArea
	for _, a := range areas {
		if a.Contains(p) {
			out = append(out, a)
		}
	}
	return out
}
