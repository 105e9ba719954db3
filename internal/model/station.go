// Package model contains the station and series types shared across the console.
package model

import (
	"encoding/json"
	"fmt"
)

// Coordinate is a map point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String formats the coordinate the way the form field shows it.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lng)
}

// Station is a named, optionally located observation point.
// Built-in stations have a nil ID and cannot be deleted.
type Station struct {
	ID         *int64
	Name       string
	Department string
	Location   *Coordinate
}

// Located reports whether the station has both coordinates.
func (s Station) Located() bool {
	return s.Location != nil
}

// Persisted reports whether the station is stored on the server.
func (s Station) Persisted() bool {
	return s.ID != nil
}

// Clone returns a deep copy of the station.
func (s Station) Clone() Station {
	c := s
	if s.ID != nil {
		id := *s.ID
		c.ID = &id
	}
	if s.Location != nil {
		loc := *s.Location
		c.Location = &loc
	}

	return c
}

// stationWire is the canonical wire shape; lat/lng/depto are accepted on decode only.
type stationWire struct {
	ID         *int64   `json:"id,omitempty"`
	Name       string   `json:"nombre"`
	Department string   `json:"departamento,omitempty"`
	Depto      string   `json:"depto,omitempty"`
	Latitude   *float64 `json:"latitud"`
	Longitude  *float64 `json:"longitud"`
	LatShort   *float64 `json:"lat,omitempty"`
	LngShort   *float64 `json:"lng,omitempty"`
}

// UnmarshalJSON accepts both naming variants returned by the stations endpoint.
// A station carrying only one of the two coordinates decodes as unlocated.
func (s *Station) UnmarshalJSON(b []byte) error {
	var w stationWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	s.ID = w.ID
	s.Name = w.Name
	s.Department = w.Department
	if s.Department == "" {
		s.Department = w.Depto
	}

	lat, lng := w.Latitude, w.Longitude
	if lat == nil {
		lat = w.LatShort
	}
	if lng == nil {
		lng = w.LngShort
	}

	s.Location = nil
	if lat != nil && lng != nil {
		s.Location = &Coordinate{Lat: *lat, Lng: *lng}
	}

	return nil
}

// MarshalJSON writes the canonical wire shape.
func (s Station) MarshalJSON() ([]byte, error) {
	w := stationWire{
		ID:         s.ID,
		Name:       s.Name,
		Department: s.Department,
	}
	if s.Location != nil {
		lat, lng := s.Location.Lat, s.Location.Lng
		w.Latitude = &lat
		w.Longitude = &lng
	}

	return json.Marshal(w)
}

// StationInput is the body of a station creation.
type StationInput struct {
	Name       string  `json:"nombre"`
	Department string  `json:"departamento"`
	Latitude   float64 `json:"latitud"`
	Longitude  float64 `json:"longitud"`
}

// StationPatch is a partial station update; nil fields are not sent.
type StationPatch struct {
	Name       *string  `json:"nombre,omitempty"`
	Department *string  `json:"departamento,omitempty"`
	Latitude   *float64 `json:"latitud,omitempty"`
	Longitude  *float64 `json:"longitud,omitempty"`
}

// LocationPatch builds a patch that only moves the station.
func LocationPatch(c Coordinate) StationPatch {
	lat, lng := c.Lat, c.Lng
	return StationPatch{Latitude: &lat, Longitude: &lng}
}
