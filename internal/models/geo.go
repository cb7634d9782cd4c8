package models

// GeoLocation - точка в формате GeoJSON с адресом, передается вместе с уведомлением
type GeoLocation struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // [longitude, latitude]
	Address     string     `json:"address"`
}

// NewPointLocation создает GeoLocation типа Point
func NewPointLocation(lon, lat float64, address string) *GeoLocation {
	return &GeoLocation{
		Type:        "Point",
		Coordinates: [2]float64{lon, lat},
		Address:     address,
	}
}

// Address - адрес места происшествия, координаты необязательны
type Address struct {
	Address     string      `json:"address" validate:"notblank"`
	Coordinates *[2]float64 `json:"coordinates,omitempty"`
	Landmark    string      `json:"landmark,omitempty"`
}
