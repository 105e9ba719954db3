package selection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/katiamach/rainfall-console/internal/logger"
	"github.com/katiamach/rainfall-console/internal/model"
	"github.com/katiamach/rainfall-console/internal/store"
)

//go:generate mockgen -source=controller.go -destination=mock/mock.go

// Controller errors.
var (
	ErrValidation   = errors.New("name, department and a map location are required")
	ErrBusy         = errors.New("the form is already being saved")
	ErrNoForm       = errors.New("no station form is open")
	ErrNotPersisted = errors.New("only stored stations can be edited or linked")
)

// Effect tells the caller what a gesture did, so it can notify the user.
type Effect int

// Gesture effects.
const (
	EffectNone Effect = iota
	EffectMarkerPlaced
	EffectLinked
	EffectLinkDeclined
	EffectCreated
	EffectUpdated
)

// TemporaryMarker is the red "new station" marker on the map. Clear is a
// no-op when no marker is placed.
type TemporaryMarker interface {
	Place(c model.Coordinate)
	Clear()
}

// Stations provides the station mutations the controller may issue.
type Stations interface {
	Create(ctx context.Context, input model.StationInput) error
	Update(ctx context.Context, id int64, patch model.StationPatch) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// FormInput holds the free-text form fields.
type FormInput struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

// Controller owns the selection state machine.
type Controller struct {
	stations Stations
	marker   TemporaryMarker

	mu         sync.Mutex
	state      State
	generation uint64
	submitting bool
}

// NewController creates new Controller in the Idle state.
func NewController(stations Stations, marker TemporaryMarker) *Controller {
	return &Controller{
		stations: stations,
		marker:   marker,
		state:    Idle{},
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// setState must be called with mu held.
func (c *Controller) setState(s State) {
	c.state = s
	c.generation++
}

// RightClick handles a context-menu click on the map at point.
//
// In LinkPending the user is asked to confirm; on accept the station is moved
// to point and the controller returns to Idle, on decline nothing changes. In
// every other state the temporary marker moves to point.
func (c *Controller) RightClick(ctx context.Context, point model.Coordinate, confirm Confirmer) (Effect, error) {
	c.mu.Lock()

	switch st := c.state.(type) {
	case LinkPending:
		c.mu.Unlock()
		return c.link(ctx, st, point, confirm)
	case Idle, CoordinatePending:
		c.marker.Clear()
		c.marker.Place(point)
		c.setState(CoordinatePending{Point: point})
	case FormOpen:
		c.marker.Clear()
		c.marker.Place(point)
		p := point
		c.setState(FormOpen{Target: st.Target, Selection: &p})
	default:
		c.mu.Unlock()
		panic("selection: unknown state")
	}

	c.mu.Unlock()
	return EffectMarkerPlaced, nil
}

func (c *Controller) link(ctx context.Context, st LinkPending, point model.Coordinate, confirm Confirmer) (Effect, error) {
	prompt := fmt.Sprintf("¿Asociar esta ubicación a la estación %s?", st.StationName)
	if confirm == nil || !confirm.Confirm(prompt) {
		return EffectLinkDeclined, nil
	}

	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	err := c.stations.Update(ctx, st.StationID, model.LocationPatch(point))
	if err != nil && !errors.Is(err, store.ErrReload) {
		return EffectNone, fmt.Errorf("failed to link station %q: %w", st.StationName, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation == gen {
		c.setState(Idle{})
	}

	logger.WithFields(logger.Fields{"station": st.StationName, "lat": point.Lat, "lng": point.Lng}).Info("station location linked")
	return EffectLinked, err
}

// StartLink enters LinkPending for station regardless of the current state.
// Any temporary marker is removed.
func (c *Controller) StartLink(station model.Station) error {
	if !station.Persisted() {
		return ErrNotPersisted
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.marker.Clear()
	c.setState(LinkPending{StationID: *station.ID, StationName: station.Name})

	return nil
}

// CancelLink leaves LinkPending. It reports whether link mode was active.
func (c *Controller) CancelLink() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.state.(LinkPending); !ok {
		return false
	}

	c.setState(Idle{})
	return true
}

// OpenAdd opens the form for a new station. A point right-clicked in this
// session is kept as the form selection; anything else is discarded.
func (c *Controller) OpenAdd() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch st := c.state.(type) {
	case CoordinatePending:
		p := st.Point
		c.setState(FormOpen{Selection: &p})
	case FormOpen:
		if st.Selection != nil && !st.Inherited {
			c.setState(FormOpen{Selection: st.Selection})
			return
		}
		c.setState(FormOpen{})
	case Idle, LinkPending:
		c.marker.Clear()
		c.setState(FormOpen{})
	default:
		panic("selection: unknown state")
	}
}

// OpenEdit opens the form bound to station. Its stored location becomes the
// selection so saving without a new right-click keeps it.
func (c *Controller) OpenEdit(station model.Station) error {
	if !station.Persisted() {
		return ErrNotPersisted
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.marker.Clear()

	target := station.Clone()
	form := FormOpen{Target: &target}
	if target.Location != nil {
		loc := *target.Location
		form.Selection = &loc
		form.Inherited = true
	}
	c.setState(form)

	return nil
}

// Submit saves the open form. Missing fields fail with ErrValidation without
// any network call. Once the station is saved the controller returns to Idle,
// and a failed list refresh is returned alongside the effect as store.ErrReload.
func (c *Controller) Submit(ctx context.Context, input FormInput) (Effect, error) {
	c.mu.Lock()

	form, ok := c.state.(FormOpen)
	if !ok {
		c.mu.Unlock()
		return EffectNone, ErrNoForm
	}
	if c.submitting {
		c.mu.Unlock()
		return EffectNone, ErrBusy
	}

	name := strings.TrimSpace(input.Name)
	if form.Target != nil {
		name = form.Target.Name
	}
	department := strings.TrimSpace(input.Department)

	if name == "" || department == "" || form.Selection == nil {
		c.mu.Unlock()
		return EffectNone, ErrValidation
	}

	c.submitting = true
	gen := c.generation
	point := *form.Selection
	c.mu.Unlock()

	effect, err := c.save(ctx, form, name, department, point)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.submitting = false
	if effect == EffectNone {
		return EffectNone, err
	}

	// The station was saved even if the list refresh after it failed.
	if c.generation == gen {
		c.marker.Clear()
		c.setState(Idle{})
	}

	return effect, err
}

func (c *Controller) save(ctx context.Context, form FormOpen, name, department string, point model.Coordinate) (Effect, error) {
	if form.Target == nil {
		err := c.stations.Create(ctx, model.StationInput{
			Name:       name,
			Department: department,
			Latitude:   point.Lat,
			Longitude:  point.Lng,
		})
		if err != nil && !errors.Is(err, store.ErrReload) {
			return EffectNone, err
		}
		return EffectCreated, err
	}

	patch := model.LocationPatch(point)
	patch.Name = &name
	patch.Department = &department
	err := c.stations.Update(ctx, *form.Target.ID, patch)
	if err != nil && !errors.Is(err, store.ErrReload) {
		return EffectNone, err
	}

	return EffectUpdated, err
}

// Cancel closes the form or abandons the pending selection and returns to
// Idle. The temporary marker is removed unless the selection was inherited
// from a stored station, which never had one.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch st := c.state.(type) {
	case Idle:
		return
	case CoordinatePending:
		c.marker.Clear()
	case LinkPending:
	case FormOpen:
		if st.Selection != nil && !st.Inherited {
			c.marker.Clear()
		}
	default:
		panic("selection: unknown state")
	}

	c.setState(Idle{})
}
