package render

import (
	"bytes"
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/katiamach/rainfall-console/internal/model"
)

// TemporaryPopup is the popup of the right-click marker.
const TemporaryPopup = "Nueva Estación Seleccionada"

// Popup returns the marker popup of st: name, department and coordinates.
func Popup(st model.Station) string {
	nodes := []*html.Node{
		element(atom.B, nil, text(st.Name)),
		element(atom.Br, nil),
		text(st.Department),
	}
	if st.Location != nil {
		nodes = append(nodes,
			element(atom.Br, nil),
			element(atom.Small, nil, text(st.Location.String())),
		)
	}

	out, err := renderNodes(nodes...)
	if err != nil {
		// bytes.Buffer writes do not fail
		panic(err)
	}

	return out
}

// TableHTML renders rows as the <tr> elements of the station table body.
func TableHTML(rows []Row) (string, error) {
	nodes := make([]*html.Node, 0, len(rows))
	for _, row := range rows {
		nodes = append(nodes, tableRow(row))
	}

	out, err := renderNodes(nodes...)
	if err != nil {
		return "", fmt.Errorf("failed to render station table: %w", err)
	}

	return out, nil
}

func tableRow(row Row) *html.Node {
	st := row.Station

	attrs := []html.Attribute{{Key: "data-station", Val: st.Name}}
	if row.Class != "" {
		attrs = append(attrs, html.Attribute{Key: "class", Val: row.Class})
	}

	id := ""
	if st.ID != nil {
		id = strconv.FormatInt(*st.ID, 10)
	}

	buttons := element(atom.Div, []html.Attribute{{Key: "class", Val: "buttons are-small is-right"}})
	switch row.Action {
	case ActionView:
		buttons.AppendChild(button("button is-info is-light btn-view", "Ver en mapa", "fa-eye",
			html.Attribute{Key: "data-lat", Val: strconv.FormatFloat(st.Location.Lat, 'f', -1, 64)},
			html.Attribute{Key: "data-lng", Val: strconv.FormatFloat(st.Location.Lng, 'f', -1, 64)},
		))
	case ActionLink:
		buttons.AppendChild(button("button is-warning is-light btn-link", "Asociar ubicación en mapa", "fa-link",
			html.Attribute{Key: "data-id", Val: id},
			html.Attribute{Key: "data-nombre", Val: st.Name},
		))
	}
	if row.Editable {
		buttons.AppendChild(button("button is-link is-light btn-edit", "Editar estación", "fa-pen",
			html.Attribute{Key: "data-id", Val: id},
		))
	}
	buttons.AppendChild(button("button is-danger is-light btn-delete", "Eliminar estación", "fa-trash",
		html.Attribute{Key: "data-id", Val: id},
	))

	return element(atom.Tr, attrs,
		element(atom.Td, nil, text(st.Name)),
		element(atom.Td, nil, text(st.Department)),
		element(atom.Td, []html.Attribute{{Key: "class", Val: "has-text-right"}}, buttons),
	)
}

func button(class, title, icon string, data ...html.Attribute) *html.Node {
	attrs := append([]html.Attribute{{Key: "class", Val: class}}, data...)
	attrs = append(attrs, html.Attribute{Key: "title", Val: title})

	return element(atom.Button, attrs,
		element(atom.Span, []html.Attribute{{Key: "class", Val: "icon is-small"}},
			element(atom.I, []html.Attribute{{Key: "class", Val: "fas " + icon}}),
		),
	)
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
	for _, c := range children {
		n.AppendChild(c)
	}

	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func renderNodes(nodes ...*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}

	return buf.String(), nil
}
