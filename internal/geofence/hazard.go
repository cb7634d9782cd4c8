package geofence

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// Category - закрытый набор категорий точечных опасностей
type Category int

const (
	CategorySachet Category = iota
	CategoryLandslide
	categoryCount
)

type categoryInfo struct {
	key              string
	notificationType string
	label            string
	icon             string
	color            string
}

var categoryTable = [categoryCount]categoryInfo{
	CategorySachet:    {key: "sachet", notificationType: "sachet", label: "Disaster Alert", icon: "⚠️", color: "#FF4500"},
	CategoryLandslide: {key: "landslide", notificationType: "landslide", label: "Landslide Alert", icon: "⛰️", color: "#8B4513"},
}

func (c Category) info() categoryInfo {
	if c < 0 || c >= categoryCount {
		panic(fmt.Sprintf("geofence: unknown hazard category %d", int(c)))
	}
	return categoryTable[c]
}

func (c Category) String() string           { return c.info().key }
func (c Category) NotificationType() string { return c.info().notificationType }
func (c Category) Label() string            { return c.info().label }
func (c Category) Icon() string             { return c.info().icon }
func (c Category) Color() string            { return c.info().color }

// ParseCategory разбирает строковое имя категории
func ParseCategory(s string) (Category, bool) {
	for i, info := range categoryTable {
		if info.key == s {
			return Category(i), true
		}
	}
	return 0, false
}

// Symbol - подтип бедствия, определяющий значок и цвет на карте
type Symbol int

const (
	SymbolLightRain Symbol = iota
	SymbolHeavyRain
	SymbolThunderstorm
	SymbolThunderShower
	SymbolCyclone
	SymbolFlood
	SymbolLandslide
	SymbolGeneral
	symbolCount
)

type symbolInfo struct {
	key   string
	name  string
	icon  string
	color string
}

var symbolTable = [symbolCount]symbolInfo{
	SymbolLightRain:     {key: "light_rain", name: "Light Rain", icon: "💧", color: "#87CEEB"},
	SymbolHeavyRain:     {key: "heavy_rain", name: "Heavy Rain", icon: "🌧️", color: "#4682B4"},
	SymbolThunderstorm:  {key: "thunderstorm", name: "Thunderstorm", icon: "⛈️", color: "#9370DB"},
	SymbolThunderShower: {key: "thunder_shower", name: "Thunder Shower", icon: "🌦️", color: "#8A2BE2"},
	SymbolCyclone:       {key: "cyclone", name: "Cyclone/Wind", icon: "🌪️", color: "#FF6347"},
	SymbolFlood:         {key: "flood", name: "Flood", icon: "🌊", color: "#0077BE"},
	SymbolLandslide:     {key: "landslide", name: "Landslide", icon: "⛰️", color: "#8B4513"},
	SymbolGeneral:       {key: "general", name: "General Alert", icon: "⚠️", color: "#FF4500"},
}

func (s Symbol) info() symbolInfo {
	if s < 0 || s >= symbolCount {
		panic(fmt.Sprintf("geofence: unknown hazard symbol %d", int(s)))
	}
	return symbolTable[s]
}

func (s Symbol) String() string { return s.info().key }
func (s Symbol) Name() string   { return s.info().name }
func (s Symbol) Icon() string   { return s.info().icon }
func (s Symbol) Color() string  { return s.info().color }

// Symbols возвращает все символы в порядке объявления
func Symbols() []Symbol {
	out := make([]Symbol, 0, symbolCount)
	for s := Symbol(0); s < symbolCount; s++ {
		out = append(out, s)
	}
	return out
}

// Правила проверяются по порядку, первое совпадение выигрывает
var disasterRules = []struct {
	substrings []string
	symbol     Symbol
}{
	{[]string{"light rain", "moderate rain"}, SymbolLightRain},
	{[]string{"heavy rain", "very heavy rain"}, SymbolHeavyRain},
	{[]string{"thunderstorm", "lightning"}, SymbolThunderstorm},
	{[]string{"thunder shower"}, SymbolThunderShower},
	{[]string{"cyclone", "surface wind"}, SymbolCyclone},
	{[]string{"flood"}, SymbolFlood},
	{[]string{"landslide"}, SymbolLandslide},
}

// ClassifyDisaster подбирает символ по текстовому типу бедствия
func ClassifyDisaster(disasterType string) Symbol {
	t := strings.ToLower(disasterType)
	for _, rule := range disasterRules {
		for _, sub := range rule.substrings {
			if strings.Contains(t, sub) {
				return rule.symbol
			}
		}
	}
	return SymbolGeneral
}

// HazardPoint - точечная опасность из статического набора данных
type HazardPoint struct {
	Category Category
	Location orb.Point // [longitude, latitude]

	// Поля оповещений о бедствиях (sachet)
	DisasterType    string
	Severity        string
	AreaDescription string

	// Поля оползней
	State    string
	District string
	Place    string
	Status   string
}

// Symbol возвращает символ для отображения на карте
func (h HazardPoint) Symbol() Symbol {
	if h.Category == CategoryLandslide {
		return SymbolLandslide
	}
	return ClassifyDisaster(h.DisasterType)
}

// AlertMessage - короткий текст для показа пользователю
func (h HazardPoint) AlertMessage() string {
	switch h.Category {
	case CategorySachet:
		return fmt.Sprintf("%s: %s, Severity: %s", h.Category.Label(), h.AreaDescription, h.Severity)
	case CategoryLandslide:
		return fmt.Sprintf("%s: %s, %s, %s, %s", h.Category.Label(), h.State, h.District, h.Place, h.Status)
	}
	panic(fmt.Sprintf("geofence: unknown hazard category %d", int(h.Category)))
}

// NotificationMessage - подробный текст уведомления
func (h HazardPoint) NotificationMessage() string {
	switch h.Category {
	case CategorySachet:
		return fmt.Sprintf("Disaster alert in your area: %s. Severity level: %s. Please take necessary precautions.",
			h.AreaDescription, h.Severity)
	case CategoryLandslide:
		return fmt.Sprintf("Landslide hazard detected at your location. Area: %s, %s, %s. Status: %s. Please avoid this area and move to safety.",
			h.Place, h.District, h.State, h.Status)
	}
	panic(fmt.Sprintf("geofence: unknown hazard category %d", int(h.Category)))
}

// Address - адрес, который уходит в location уведомления
func (h HazardPoint) Address() string {
	switch h.Category {
	case CategorySachet:
		if h.AreaDescription == "" {
			return "Alert Area"
		}
		return h.AreaDescription
	case CategoryLandslide:
		return fmt.Sprintf("%s, %s, %s", h.Place, h.District, h.State)
	}
	panic(fmt.Sprintf("geofence: unknown hazard category %d", int(h.Category)))
}

// Name - подпись точки на карте
func (h HazardPoint) Name() string {
	if h.Category == CategoryLandslide {
		return "Landslide Alert"
	}
	return h.DisasterType + " Alert"
}
