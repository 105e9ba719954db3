package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/tj/assert"

	"github.com/katiamach/rainfall-console/internal/model"
	"github.com/katiamach/rainfall-console/internal/store"
)

func stations() []model.Station {
	one, two := int64(1), int64(2)
	return []model.Station{
		{ID: &one, Name: "Pilar", Department: "Ñeembucú", Location: &model.Coordinate{Lat: -26.8667, Lng: -58.3}},
		{ID: &two, Name: "Villarrica", Department: "Guairá"},
		{Name: "Asunción", Department: "Capital", Location: &model.Coordinate{Lat: -25.2637, Lng: -57.5759}},
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	layer := NewLayer()
	r := NewRenderer(layer)

	first := r.Render(stations())
	assert.Equal(t, 2, first.Markers)
	assert.Len(t, first.Rows, 3)
	assert.Len(t, layer.Markers(), 2)

	second := r.Render(stations())
	assert.Equal(t, first.Markers, second.Markers)
	assert.Len(t, layer.Markers(), 2)
}

func TestRenderShrinksWithFilteredList(t *testing.T) {
	layer := NewLayer()
	r := NewRenderer(layer)

	r.Render(stations())
	view := r.Render(store.FilterStations(stations(), "guaira"))

	assert.Equal(t, 0, view.Markers)
	assert.Len(t, view.Rows, 1)
	assert.Len(t, layer.Markers(), 0)

	view = r.Render(stations())
	assert.Len(t, view.Rows, 3)
	assert.Len(t, layer.Markers(), 2)
}

func TestRenderKeepsTemporaryMarker(t *testing.T) {
	layer := NewLayer()
	r := NewRenderer(layer)
	tmp := NewTemporaryMarker(layer)

	tmp.Place(model.Coordinate{Lat: -25, Lng: -57})
	r.Render(stations())
	r.Render(stations())

	markers := layer.Markers()
	assert.Len(t, markers, 3)
	assert.Equal(t, KindTemporary, markers[0].Kind)
	assert.Equal(t, TemporaryPopup, markers[0].Popup)
}

func TestRows(t *testing.T) {
	view := NewRenderer(NewLayer()).Render(stations())

	pilar, villarrica, asuncion := view.Rows[0], view.Rows[1], view.Rows[2]

	assert.True(t, pilar.Located)
	assert.Equal(t, ActionView, pilar.Action)
	assert.True(t, pilar.Deletable)
	assert.Equal(t, "", pilar.Class)

	assert.False(t, villarrica.Located)
	assert.Equal(t, ActionLink, villarrica.Action)
	assert.Equal(t, ClassUnlocated, villarrica.Class)

	assert.False(t, asuncion.Deletable)
	assert.False(t, asuncion.Editable)
}

func TestMarkerSelectsStation(t *testing.T) {
	layer := NewLayer()
	NewRenderer(layer).Render(stations())

	m, ok := layer.Marker(layer.Markers()[0].Handle)
	assert.True(t, ok)
	assert.Equal(t, "Pilar", m.Station)
	assert.Equal(t, KindStation, m.Kind)
}

func TestTemporaryMarker(t *testing.T) {
	layer := NewLayer()
	tmp := NewTemporaryMarker(layer)

	tmp.Clear()
	assert.False(t, tmp.Placed())

	tmp.Place(model.Coordinate{Lat: 1, Lng: 1})
	tmp.Place(model.Coordinate{Lat: 2, Lng: 2})
	assert.True(t, tmp.Placed())

	markers := layer.Markers()
	assert.Len(t, markers, 1)
	assert.Equal(t, model.Coordinate{Lat: 2, Lng: 2}, markers[0].Position)

	tmp.Clear()
	assert.False(t, tmp.Placed())
	assert.Len(t, layer.Markers(), 0)
}

func TestPopup(t *testing.T) {
	st := stations()[0]
	assert.Equal(t, "<b>Pilar</b><br/>Ñeembucú<br/><small>-26.8667, -58.3000</small>", Popup(st))

	st.Name = "<script>"
	assert.True(t, strings.HasPrefix(Popup(st), "<b>&lt;script&gt;</b>"))
}

func TestTableHTML(t *testing.T) {
	rows := NewRenderer(NewLayer()).Render(stations()).Rows

	out, err := TableHTML(rows)
	assert.Nil(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table><tbody>" + out + "</tbody></table>"))
	assert.Nil(t, err)

	trs := doc.Find("tr")
	assert.Equal(t, 3, trs.Length())
	assert.Equal(t, 3, doc.Find("button.btn-delete").Length())
	assert.Equal(t, 2, doc.Find("button.btn-view").Length())
	assert.Equal(t, 2, doc.Find("button.btn-edit").Length())

	link := doc.Find("tr.has-text-danger button.btn-link")
	assert.Equal(t, 1, link.Length())
	id, _ := link.Attr("data-id")
	assert.Equal(t, "2", id)
	name, _ := link.Attr("data-nombre")
	assert.Equal(t, "Villarrica", name)

	lat, _ := doc.Find("tr[data-station='Pilar'] button.btn-view").Attr("data-lat")
	assert.Equal(t, "-26.8667", lat)

	builtin, _ := doc.Find("tr[data-station='Asunción'] button.btn-delete").Attr("data-id")
	assert.Equal(t, "", builtin)

	assert.Equal(t, "Guairá", trs.Eq(1).Find("td").Eq(1).Text())
}

func TestFocus(t *testing.T) {
	v, ok := Focus(stations()[0])
	assert.True(t, ok)
	assert.Equal(t, FocusZoom, v.Zoom)
	assert.Equal(t, -26.8667, v.Center.Lat)

	_, ok = Focus(stations()[1])
	assert.False(t, ok)
}
