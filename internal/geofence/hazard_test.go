package geofence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDisaster(t *testing.T) {
	tests := []struct {
		input    string
		expected Symbol
	}{
		{"Light Rain", SymbolLightRain},
		{"Moderate rain expected", SymbolLightRain},
		{"HEAVY RAIN", SymbolHeavyRain},
		{"Very Heavy Rain", SymbolHeavyRain},
		{"Thunderstorm & Lightning", SymbolThunderstorm},
		{"Thunder Shower", SymbolThunderShower},
		{"Cyclone", SymbolCyclone},
		{"Strong Surface Wind", SymbolCyclone},
		{"Flash Flood", SymbolFlood},
		{"Landslide", SymbolLandslide},
		{"Earthquake", SymbolGeneral},
		{"", SymbolGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyDisaster(tt.input))
		})
	}
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "sachet", CategorySachet.String())
	assert.Equal(t, "Landslide Alert", CategoryLandslide.Label())

	c, ok := ParseCategory("landslide")
	assert.True(t, ok)
	assert.Equal(t, CategoryLandslide, c)

	_, ok = ParseCategory("volcano")
	assert.False(t, ok)

	assert.Panics(t, func() { _ = Category(42).String() })
}

func TestSymbols(t *testing.T) {
	symbols := Symbols()

	assert.Len(t, symbols, 8)
	for _, s := range symbols {
		assert.NotEmpty(t, s.Icon())
		assert.NotEmpty(t, s.Color())
		assert.NotEmpty(t, s.Name())
	}
}

func TestHazardPoint_Texts(t *testing.T) {
	h := sector7()

	assert.Equal(t, "Disaster Alert: Sector 7, Severity: High", h.AlertMessage())
	assert.Equal(t, "Sector 7", h.Address())
	assert.Equal(t, "Heavy Rain Alert", h.Name())
	assert.Equal(t, SymbolHeavyRain, h.Symbol())

	h.AreaDescription = ""
	assert.Equal(t, "Alert Area", h.Address())

	l := HazardPoint{Category: CategoryLandslide, State: "S", District: "D", Place: "P", Status: "Active"}
	assert.Equal(t, SymbolLandslide, l.Symbol())
	assert.Equal(t, "P, D, S", l.Address())
	assert.Equal(t, "Landslide Alert", l.Name())
}
