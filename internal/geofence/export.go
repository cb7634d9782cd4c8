package geofence

import (
	"github.com/paulmach/orb/geojson"
)

const circleSteps = 64

// AreasCollection отдает запретные зоны как GeoJSON для слоя карты
func AreasCollection(areas []RestrictedArea) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, a := range areas {
		f := geojson.NewFeature(a.Polygon)
		f.Properties["name"] = a.Name
		fc.Append(f)
	}
	return fc
}

// HazardsCollection отдает точечные опасности с символом, значком и цветом
func HazardsCollection(hazards []HazardPoint) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, h := range hazards {
		sym := h.Symbol()
		f := geojson.NewFeature(h.Location)
		f.Properties["category"] = h.Category.String()
		f.Properties["symbolType"] = sym.String()
		f.Properties["icon"] = sym.Icon()
		f.Properties["color"] = sym.Color()
		f.Properties["name"] = h.Name()
		switch h.Category {
		case CategorySachet:
			f.Properties["disaster_type"] = h.DisasterType
			f.Properties["severity"] = h.Severity
			f.Properties["area_description"] = h.AreaDescription
		case CategoryLandslide:
			f.Properties["state"] = h.State
			f.Properties["district"] = h.District
			f.Properties["location"] = h.Place
			f.Properties["status"] = h.Status
		}
		fc.Append(f)
	}
	return fc
}

// ZonesCollection строит круги зон с множителем scale (анимация пульсации)
func ZonesCollection(hazards []HazardPoint, scale float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, h := range hazards {
		zone := ZoneFor(h)
		f := geojson.NewFeature(zone.Circle(scale, circleSteps))
		f.Properties["category"] = h.Category.String()
		f.Properties["radius_meters"] = zone.RadiusMeters * scale
		fc.Append(f)
	}
	return fc
}
