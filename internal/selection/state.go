// Package selection tracks what the next map right-click means: a new
// station location, the location of an unlocated station being linked, or
// the coordinate field of the open station form.
package selection

import (
	"github.com/katiamach/rainfall-console/internal/model"
)

// State is one of Idle, CoordinatePending, LinkPending or FormOpen.
type State interface {
	isState()
}

// Idle means nothing is selected.
type Idle struct{}

// CoordinatePending holds a right-clicked point with no target station.
type CoordinatePending struct {
	Point model.Coordinate
}

// LinkPending waits for the right-click that locates an existing station.
type LinkPending struct {
	StationID   int64
	StationName string
}

// FormOpen is the add/edit form. Target is nil when creating. Selection is
// the coordinate the form will save; Inherited marks it as the target's
// stored location rather than a fresh right-click.
type FormOpen struct {
	Target    *model.Station
	Selection *model.Coordinate
	Inherited bool
}

func (Idle) isState()              {}
func (CoordinatePending) isState() {}
func (LinkPending) isState()       {}
func (FormOpen) isState()          {}

// Editing reports whether the form is bound to an existing station.
func (f FormOpen) Editing() bool {
	return f.Target != nil
}

// Name returns the mode name exposed to the page.
func Name(s State) string {
	switch s.(type) {
	case Idle:
		return "idle"
	case CoordinatePending:
		return "coordinate_pending"
	case LinkPending:
		return "link_pending"
	case FormOpen:
		return "form_open"
	default:
		panic("selection: unknown state")
	}
}

// FormView is the content of the open form.
type FormView struct {
	Editing     bool   `json:"editing"`
	Name        string `json:"name"`
	NameLocked  bool   `json:"name_locked"`
	Department  string `json:"department"`
	Coordinates string `json:"coordinates"`
}

// View is the page-facing projection of a state.
type View struct {
	Mode        string            `json:"mode"`
	Pending     *model.Coordinate `json:"pending,omitempty"`
	LinkStation string            `json:"link_station,omitempty"`
	Form        *FormView         `json:"form,omitempty"`
}

// Project builds the View of s.
func Project(s State) View {
	v := View{Mode: Name(s)}

	switch st := s.(type) {
	case Idle:
	case CoordinatePending:
		p := st.Point
		v.Pending = &p
	case LinkPending:
		v.LinkStation = st.StationName
	case FormOpen:
		form := &FormView{Editing: st.Editing()}
		if st.Target != nil {
			form.Name = st.Target.Name
			form.NameLocked = true
			form.Department = st.Target.Department
		}
		if st.Selection != nil {
			p := *st.Selection
			v.Pending = &p
			form.Coordinates = p.String()
		}
		v.Form = form
	}

	return v
}
