package render

import (
	"sort"
	"sync"

	"github.com/katiamach/rainfall-console/internal/model"
)

// PlacedMarker is a marker currently on a Layer.
type PlacedMarker struct {
	Handle MarkerHandle `json:"handle"`
	Marker
}

// Layer is the server-held marker layer mirrored by the page.
type Layer struct {
	mu      sync.Mutex
	next    MarkerHandle
	markers map[MarkerHandle]Marker
}

// NewLayer creates an empty Layer.
func NewLayer() *Layer {
	return &Layer{markers: make(map[MarkerHandle]Marker)}
}

// AddMarker implements MapLayer.
func (l *Layer) AddMarker(m Marker) MarkerHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++
	l.markers[l.next] = m

	return l.next
}

// RemoveMarker implements MapLayer. Unknown handles are ignored.
func (l *Layer) RemoveMarker(h MarkerHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.markers, h)
}

// Markers returns the placed markers in placement order.
func (l *Layer) Markers() []PlacedMarker {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]PlacedMarker, 0, len(l.markers))
	for h, m := range l.markers {
		out = append(out, PlacedMarker{Handle: h, Marker: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })

	return out
}

// Marker returns the marker placed under h.
func (l *Layer) Marker(h MarkerHandle) (Marker, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.markers[h]
	return m, ok
}

// TemporaryMarker is the single red marker of a pending selection.
type TemporaryMarker struct {
	layer MapLayer

	mu     sync.Mutex
	handle *MarkerHandle
}

// NewTemporaryMarker creates new TemporaryMarker drawn on layer.
func NewTemporaryMarker(layer MapLayer) *TemporaryMarker {
	return &TemporaryMarker{layer: layer}
}

// Place moves the marker to c, removing the previous one.
func (t *TemporaryMarker) Place(c model.Coordinate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.clear()
	h := t.layer.AddMarker(Marker{Kind: KindTemporary, Position: c, Popup: TemporaryPopup})
	t.handle = &h
}

// Clear removes the marker if one is placed.
func (t *TemporaryMarker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.clear()
}

// Placed reports whether the marker is on the map.
func (t *TemporaryMarker) Placed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.handle != nil
}

func (t *TemporaryMarker) clear() {
	if t.handle == nil {
		return
	}

	t.layer.RemoveMarker(*t.handle)
	t.handle = nil
}
