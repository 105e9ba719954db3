// Package render turns the station list into map markers and table rows.
package render

import (
	"sync"

	"github.com/katiamach/rainfall-console/internal/model"
)

// Default map view over Paraguay.
var DefaultCenter = model.Coordinate{Lat: -23.4425, Lng: -58.4438}

// Zoom levels.
const (
	DefaultZoom = 6
	FocusZoom   = 10
)

// Row classes.
const (
	ClassUnlocated = "has-text-danger has-background-danger-light"
)

// MarkerKind distinguishes station markers from the temporary selection.
type MarkerKind string

// Marker kinds.
const (
	KindStation   MarkerKind = "station"
	KindTemporary MarkerKind = "temporary"
)

// Marker is a map marker with its popup content.
type Marker struct {
	Kind     MarkerKind       `json:"kind"`
	Position model.Coordinate `json:"position"`
	Popup    string           `json:"popup"`
	// Station is the name a click on the marker selects as forecast location.
	Station string `json:"station,omitempty"`
}

// MarkerHandle identifies a marker placed on a MapLayer.
type MarkerHandle int64

// MapLayer is the map the markers are drawn on.
type MapLayer interface {
	AddMarker(m Marker) MarkerHandle
	RemoveMarker(h MarkerHandle)
}

// Action is the row action offered next to delete.
type Action string

// Row actions.
const (
	ActionView Action = "view"
	ActionLink Action = "link"
)

// Row is one station table row.
type Row struct {
	Station   model.Station `json:"station"`
	Located   bool          `json:"located"`
	Action    Action        `json:"action"`
	Editable  bool          `json:"editable"`
	Deletable bool          `json:"deletable"`
	Class     string        `json:"class,omitempty"`
}

// View is the result of a render pass.
type View struct {
	Rows    []Row `json:"rows"`
	Markers int   `json:"markers"`
}

// MapView is a map center and zoom.
type MapView struct {
	Center model.Coordinate `json:"center"`
	Zoom   int              `json:"zoom"`
}

// Renderer owns the station markers it placed on the layer.
type Renderer struct {
	layer MapLayer

	mu      sync.Mutex
	handles []MarkerHandle
}

// NewRenderer creates new Renderer drawing on layer.
func NewRenderer(layer MapLayer) *Renderer {
	return &Renderer{layer: layer}
}

// Render replaces every marker of the previous pass with one marker per
// located station and returns one row per station.
func (r *Renderer) Render(stations []model.Station) View {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.handles {
		r.layer.RemoveMarker(h)
	}
	r.handles = r.handles[:0]

	rows := make([]Row, 0, len(stations))
	for _, st := range stations {
		rows = append(rows, RowFor(st))

		if !st.Located() {
			continue
		}
		h := r.layer.AddMarker(Marker{
			Kind:     KindStation,
			Position: *st.Location,
			Popup:    Popup(st),
			Station:  st.Name,
		})
		r.handles = append(r.handles, h)
	}

	return View{Rows: rows, Markers: len(r.handles)}
}

// RowFor builds the table row of st.
func RowFor(st model.Station) Row {
	row := Row{
		Station:   st.Clone(),
		Located:   st.Located(),
		Action:    ActionView,
		Editable:  st.Persisted(),
		Deletable: st.Persisted(),
	}
	if !row.Located {
		row.Action = ActionLink
		row.Class = ClassUnlocated
	}

	return row
}

// Focus returns the view centered on st, false if st has no location.
func Focus(st model.Station) (MapView, bool) {
	if !st.Located() {
		return MapView{}, false
	}

	return MapView{Center: *st.Location, Zoom: FocusZoom}, true
}
