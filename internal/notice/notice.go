// Package notice keeps the transient notifications shown to the operator.
// Notices stack, expire on their own and never block the page.
package notice

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/katiamach/rainfall-console/internal/logger"
)

// DefaultTTL is how long a notice stays visible.
const DefaultTTL = 4 * time.Second

// Level is the severity of a notice, named after its page style.
type Level string

// Notice levels.
const (
	LevelInfo    Level = "is-info"
	LevelSuccess Level = "is-success"
	LevelWarning Level = "is-warning"
	LevelDanger  Level = "is-danger"
)

// Notice events.
const (
	EventPush    = "notice"
	EventDismiss = "notice_dismiss"
)

// Notice is a single notification.
type Notice struct {
	ID      string    `json:"id"`
	Seq     uint64    `json:"seq"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Created time.Time `json:"created"`
}

// Dismissal tells the page to drop a notice.
type Dismissal struct {
	ID string `json:"id"`
}

// Publisher sends an event to the page.
type Publisher interface {
	Publish(event string, data interface{})
}

// Board holds the live notices. Expired and dismissed notices are announced
// to the publisher.
type Board struct {
	items *cache.Cache
	pub   Publisher
	seq   uint64
}

// NewBoard creates new Board whose notices expire after ttl.
func NewBoard(ttl time.Duration, pub Publisher) *Board {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	items := cache.New(ttl, janitorInterval(ttl))
	items.OnEvicted(func(id string, _ interface{}) {
		pub.Publish(EventDismiss, Dismissal{ID: id})
	})

	return &Board{items: items, pub: pub}
}

func janitorInterval(ttl time.Duration) time.Duration {
	interval := ttl / 8
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}

	return interval
}

// Push adds a notice and announces it.
func (b *Board) Push(level Level, message string) Notice {
	n := Notice{
		ID:      uuid.NewString(),
		Seq:     atomic.AddUint64(&b.seq, 1),
		Level:   level,
		Message: message,
		Created: time.Now(),
	}

	b.items.SetDefault(n.ID, n)
	b.pub.Publish(EventPush, n)

	logger.WithFields(logger.Fields{"level": level, "id": n.ID}).Debug(message)
	return n
}

// Info pushes an informational notice.
func (b *Board) Info(message string) Notice { return b.Push(LevelInfo, message) }

// Success pushes a success notice.
func (b *Board) Success(message string) Notice { return b.Push(LevelSuccess, message) }

// Warning pushes a warning notice.
func (b *Board) Warning(message string) Notice { return b.Push(LevelWarning, message) }

// Danger pushes an error notice.
func (b *Board) Danger(message string) Notice { return b.Push(LevelDanger, message) }

// Dismiss removes a notice before it expires. It reports whether the notice
// was still live.
func (b *Board) Dismiss(id string) bool {
	if _, ok := b.items.Get(id); !ok {
		return false
	}

	b.items.Delete(id)
	return true
}

// Active returns the live notices, oldest first.
func (b *Board) Active() []Notice {
	items := b.items.Items()

	out := make([]Notice, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(Notice))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })

	return out
}
