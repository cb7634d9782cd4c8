package geofence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const areasGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Zone A"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[0,2],[2,2],[2,0],[0,0]], [[0.5,0.5],[0.5,1],[1,1],[0.5,0.5]]]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "MultiPolygon", "coordinates": [[[[10,10],[10,11],[11,11],[10,10]]], [[[20,20],[20,21],[21,21]]]]}},
    {"type": "Feature", "properties": {"name": "Line"},
     "geometry": {"type": "LineString", "coordinates": [[0,0],[1,1]]}},
    {"type": "Feature", "properties": {"name": "Degenerate"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,1],[0,0]]]}}
  ]
}`

func TestLoadRestrictedAreas(t *testing.T) {
	areas, skipped, err := LoadRestrictedAreas(strings.NewReader(areasGeoJSON))

	require.NoError(t, err)
	require.Len(t, areas, 3)
	assert.Equal(t, 2, skipped)

	assert.Equal(t, "Zone A", areas[0].Name)
	// дыры отбрасываются
	assert.Len(t, areas[0].Polygon, 1)
	assert.True(t, areas[0].Contains(orb.Point{0.6, 0.8}))

	assert.Equal(t, "", areas[1].Name)
	assert.Equal(t, "Restricted Area", areas[1].DisplayName())
	// незамкнутое кольцо замыкается
	assert.True(t, areas[2].Polygon[0].Closed())
}

func TestLoadRestrictedAreas_InvalidJSON(t *testing.T) {
	_, _, err := LoadRestrictedAreas(strings.NewReader("{not json"))

	assert.Error(t, err)
}

func TestLoadSachetAlerts(t *testing.T) {
	input := `[
	  {"centroid": "10,10", "severity": "High", "area_description": "Sector 7", "disaster_type": "Heavy Rain"},
	  {"centroid": "", "severity": "Low"},
	  {"centroid": "abc,10"},
	  {"centroid": "1,2,3"},
	  {"centroid": " 77.5 , 12.9 ", "severity": "Moderate", "area_description": "Bengaluru", "disaster_type": "Flood"}
	]`

	hazards, skipped, err := LoadSachetAlerts(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	require.Len(t, hazards, 2)

	assert.Equal(t, CategorySachet, hazards[0].Category)
	assert.Equal(t, orb.Point{10, 10}, hazards[0].Location)
	assert.Equal(t, "Sector 7", hazards[0].AreaDescription)
	assert.Equal(t, "High", hazards[0].Severity)
	assert.Equal(t, orb.Point{77.5, 12.9}, hazards[1].Location)
}

func TestLoadLandslides(t *testing.T) {
	input := `[
	  {"lat": 26.2, "lon": 92.9, "state": "Assam", "district": "Dima Hasao", "location": "Haflong", "status": "Active"},
	  {"lat": null, "lon": 92.9},
	  {"lon": 92.9},
	  {"lat": 0, "lon": 0, "state": "Null Island"}
	]`

	hazards, skipped, err := LoadLandslides(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, hazards, 2)
	assert.Equal(t, CategoryLandslide, hazards[0].Category)
	assert.Equal(t, orb.Point{92.9, 26.2}, hazards[0].Location)
	assert.Equal(t, "Haflong", hazards[0].Place)
	assert.Equal(t, orb.Point{0, 0}, hazards[1].Location)
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()
	areasPath := filepath.Join(dir, "areas.geojson")
	sachetPath := filepath.Join(dir, "sachet.json")
	landslidePath := filepath.Join(dir, "landslide.json")

	require.NoError(t, os.WriteFile(areasPath, []byte(areasGeoJSON), 0o600))
	require.NoError(t, os.WriteFile(sachetPath, []byte(`[{"centroid": "10,10", "severity": "High"}, {"centroid": "bad"}]`), 0o600))
	require.NoError(t, os.WriteFile(landslidePath, []byte(`[{"lat": 1, "lon": 2}]`), 0o600))

	ds, err := LoadDataset(areasPath, sachetPath, landslidePath)

	require.NoError(t, err)
	assert.Len(t, ds.Areas, 3)
	assert.Len(t, ds.Hazards, 2)
	assert.Equal(t, 3, ds.Skipped)
}

func TestLoadDataset_EmptyPathsSkipped(t *testing.T) {
	ds, err := LoadDataset("", "", "")

	require.NoError(t, err)
	assert.Empty(t, ds.Areas)
	assert.Empty(t, ds.Hazards)
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.geojson"), "", "")

	assert.Error(t, err)
}
