package notice

import (
	"sync"
	"testing"
	"time"

	"github.com/tj/assert"
)

type event struct {
	name string
	data interface{}
}

type recorder struct {
	mu     sync.Mutex
	events []event
}

func (r *recorder) Publish(name string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event{name: name, data: data})
}

func (r *recorder) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, e := range r.events {
		if e.name == name {
			n++
		}
	}

	return n
}

func TestPushStacks(t *testing.T) {
	rec := &recorder{}
	b := NewBoard(time.Minute, rec)

	first := b.Warning("Complete nombre, departamento y haga clic derecho en el mapa.")
	second := b.Danger("Estación no encontrada")
	third := b.Success("Estación añadida con éxito.")

	active := b.Active()
	assert.Len(t, active, 3)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)
	assert.Equal(t, third.ID, active[2].ID)
	assert.Equal(t, LevelDanger, active[1].Level)

	assert.Equal(t, 3, rec.count(EventPush))
}

func TestDismiss(t *testing.T) {
	rec := &recorder{}
	b := NewBoard(time.Minute, rec)

	n := b.Info("Centrando mapa en la estación...")

	assert.True(t, b.Dismiss(n.ID))
	assert.False(t, b.Dismiss(n.ID))
	assert.Len(t, b.Active(), 0)
	assert.Equal(t, 1, rec.count(EventDismiss))
}

func TestNoticesExpire(t *testing.T) {
	rec := &recorder{}
	b := NewBoard(50*time.Millisecond, rec)

	b.Info("Subiendo datos...")
	b.Info("Datos cargados correctamente.")

	deadline := time.Now().Add(2 * time.Second)
	for rec.count(EventDismiss) < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	assert.Equal(t, 2, rec.count(EventDismiss))
	assert.Len(t, b.Active(), 0)
}

func TestDefaultTTL(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, janitorInterval(DefaultTTL))
	assert.Equal(t, 10*time.Millisecond, janitorInterval(time.Millisecond))
}
