package sos

import (
	"sync"

	"github.com/paulmach/orb"
)

// Marker - точка на карте ожидания помощи
type Marker struct {
	Name     string    `json:"name"`
	Location orb.Point `json:"location"` // [longitude, latitude]
	Color    string    `json:"color"`
}

// MapHandle - карта экрана ожидания, которой владеет одна сессия SOS
type MapHandle interface {
	Markers() []Marker
	Close() error
}

// MapProvider открывает карту с центром в позиции пользователя
type MapProvider interface {
	Open(center orb.Point) (MapHandle, error)
}

const responderOffset = 0.005

// ResponderMaps строит карту с пользователем и двумя экипажами рядом с ним
type ResponderMaps struct{}

func (ResponderMaps) Open(center orb.Point) (MapHandle, error) {
	return &responderMap{markers: []Marker{
		{Name: "You", Location: center, Color: "#ef4444"},
		{Name: "Police Unit", Location: orb.Point{center.Lon() + responderOffset, center.Lat() + responderOffset}, Color: "#3b82f6"},
		{Name: "Medical Team", Location: orb.Point{center.Lon() - responderOffset, center.Lat() - responderOffset}, Color: "#22c55e"},
	}}, nil
}

type responderMap struct {
	mu      sync.Mutex
	markers []Marker
	closed  bool
}

func (m *responderMap) Markers() []Marker {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	out := make([]Marker, len(m.markers))
	copy(out, m.markers)
	return out
}

func (m *responderMap) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.markers = nil
	return nil
}
