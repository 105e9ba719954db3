package chart

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katiamach/rainfall-console/internal/logger"
)

//go:generate mockgen -source=slot.go -destination=mock/mock.go

// Instance is a live chart on a canvas.
type Instance interface {
	Destroy()
}

// Library creates chart instances.
type Library interface {
	Create(canvas string, config interface{}) (Instance, error)
}

// Slot owns the chart instance of one canvas.
type Slot struct {
	lib    Library
	canvas string

	mu      sync.Mutex
	current Instance
	config  interface{}
}

// NewSlot creates an empty Slot for canvas.
func NewSlot(lib Library, canvas string) *Slot {
	return &Slot{lib: lib, canvas: canvas}
}

// Replace destroys the current instance, then builds and creates the next
// one. The old instance is gone even when build or Create fails.
func (s *Slot) Replace(build func() (interface{}, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.release()

	config, err := build()
	if err != nil {
		return err
	}

	inst, err := s.lib.Create(s.canvas, config)
	if err != nil {
		return fmt.Errorf("failed to create chart on %s: %w", s.canvas, err)
	}

	s.current = inst
	s.config = config

	return nil
}

// Release destroys the current instance, if any.
func (s *Slot) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.release()
}

// Config returns the configuration of the live instance.
func (s *Slot) Config() (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.config, s.current != nil
}

func (s *Slot) release() {
	if s.current == nil {
		return
	}

	s.current.Destroy()
	s.current = nil
	s.config = nil
}

// Publisher sends an event to the page.
type Publisher interface {
	Publish(event string, data interface{})
}

// Chart events.
const (
	EventCreate  = "chart"
	EventDestroy = "chart_destroy"
)

// Message is the payload of the chart events.
type Message struct {
	ID     uint64      `json:"id"`
	Canvas string      `json:"canvas"`
	Config interface{} `json:"config,omitempty"`
}

// Remote is a Library whose instances live in the page and are driven by
// published events.
type Remote struct {
	pub  Publisher
	next uint64
}

// NewRemote creates new Remote publishing to pub.
func NewRemote(pub Publisher) *Remote {
	return &Remote{pub: pub}
}

// Create implements Library.
func (r *Remote) Create(canvas string, config interface{}) (Instance, error) {
	id := atomic.AddUint64(&r.next, 1)
	r.pub.Publish(EventCreate, Message{ID: id, Canvas: canvas, Config: config})

	return &remoteInstance{pub: r.pub, id: id, canvas: canvas}, nil
}

type remoteInstance struct {
	pub    Publisher
	id     uint64
	canvas string
	once   sync.Once
}

func (i *remoteInstance) Destroy() {
	i.once.Do(func() {
		i.pub.Publish(EventDestroy, Message{ID: i.id, Canvas: i.canvas})
		logger.WithFields(logger.Fields{"canvas": i.canvas, "id": i.id}).Debug("chart destroyed")
	})
}
