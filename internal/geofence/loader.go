package geofence

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Dataset - статические данные, загружаемые при старте
type Dataset struct {
	Areas   []RestrictedArea
	Hazards []HazardPoint
	Skipped int
}

type sachetRecord struct {
	Centroid        string `json:"centroid"`
	Severity        string `json:"severity"`
	AreaDescription string `json:"area_description"`
	DisasterType    string `json:"disaster_type"`
}

type landslideRecord struct {
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	State    string   `json:"state"`
	District string   `json:"district"`
	Location string   `json:"location"`
	Status   string   `json:"status"`
}

// LoadRestrictedAreas читает GeoJSON FeatureCollection с полигонами.
// Дыры полигонов отбрасываются, MultiPolygon раскладывается на отдельные зоны.
// Возвращает количество пропущенных объектов.
func LoadRestrictedAreas(r io.Reader) ([]RestrictedArea, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read restricted areas: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse restricted areas geojson: %w", err)
	}

	var (
		areas   []RestrictedArea
		skipped int
	)
	for _, f := range fc.Features {
		name := f.Properties.MustString("name", "")

		var polygons []orb.Polygon
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			polygons = []orb.Polygon{g}
		case orb.MultiPolygon:
			polygons = g
		default:
			skipped++
			continue
		}

		for _, poly := range polygons {
			if len(poly) == 0 {
				skipped++
				continue
			}
			area, err := NewRestrictedArea(name, poly[0])
			if err != nil {
				skipped++
				continue
			}
			areas = append(areas, area)
		}
	}
	return areas, skipped, nil
}

// LoadSachetAlerts читает оповещения о бедствиях с центроидом "lon,lat".
// Записи без корректного центроида пропускаются.
func LoadSachetAlerts(r io.Reader) ([]HazardPoint, int, error) {
	var records []sachetRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, 0, fmt.Errorf("failed to decode sachet alerts: %w", err)
	}

	hazards := make([]HazardPoint, 0, len(records))
	skipped := 0
	for _, rec := range records {
		loc, ok := parseCentroid(rec.Centroid)
		if !ok {
			skipped++
			continue
		}
		hazards = append(hazards, HazardPoint{
			Category:        CategorySachet,
			Location:        loc,
			DisasterType:    rec.DisasterType,
			Severity:        rec.Severity,
			AreaDescription: rec.AreaDescription,
		})
	}
	return hazards, skipped, nil
}

// LoadLandslides читает оползни с отдельными полями lat и lon
func LoadLandslides(r io.Reader) ([]HazardPoint, int, error) {
	var records []landslideRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, 0, fmt.Errorf("failed to decode landslides: %w", err)
	}

	hazards := make([]HazardPoint, 0, len(records))
	skipped := 0
	for _, rec := range records {
		if rec.Lat == nil || rec.Lon == nil {
			skipped++
			continue
		}
		hazards = append(hazards, HazardPoint{
			Category: CategoryLandslide,
			Location: orb.Point{*rec.Lon, *rec.Lat},
			State:    rec.State,
			District: rec.District,
			Place:    rec.Location,
			Status:   rec.Status,
		})
	}
	return hazards, skipped, nil
}

// LoadDataset загружает все три файла. Пустой путь означает отсутствие набора.
func LoadDataset(areasPath, sachetPath, landslidePath string) (*Dataset, error) {
	ds := &Dataset{}

	if areasPath != "" {
		err := withFile(areasPath, func(r io.Reader) error {
			areas, skipped, err := LoadRestrictedAreas(r)
			ds.Areas = areas
			ds.Skipped += skipped
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	if sachetPath != "" {
		err := withFile(sachetPath, func(r io.Reader) error {
			hazards, skipped, err := LoadSachetAlerts(r)
			ds.Hazards = append(ds.Hazards, hazards...)
			ds.Skipped += skipped
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	if landslidePath != "" {
		err := withFile(landslidePath, func(r io.Reader) error {
			hazards, skipped, err := LoadLandslides(r)
			ds.Hazards = append(ds.Hazards, hazards...)
			ds.Skipped += skipped
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return ds, nil
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return fn(f)
}

func parseCentroid(s string) (orb.Point, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, false
	}
	return orb.Point{lon, lat}, true
}
