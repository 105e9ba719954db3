package api

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tj/assert"
	"go.uber.org/goleak"
)

type countingResyncer struct {
	calls atomic.Int32
	err   error
	ctxOK atomic.Bool
}

func (r *countingResyncer) Resync(ctx context.Context) error {
	r.calls.Add(1)
	_, hasDeadline := ctx.Deadline()
	r.ctxOK.Store(hasDeadline)
	return r.err
}

func TestSchedulerStopsCleanly(t *testing.T) {
	defer goleak.VerifyNone(t,
		goleak.IgnoreAnyFunction("github.com/patrickmn/go-cache.(*janitor).Run"),
		goleak.IgnoreAnyFunction("github.com/sirupsen/logrus.(*Entry).writerScanner"),
	)

	target := &countingResyncer{}
	s, err := NewScheduler("@every 1h", target, time.Second)
	assert.Nil(t, err)

	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Nil(t, s.Stop(ctx))
	assert.Equal(t, int32(0), target.calls.Load())
}

func TestSchedulerRun(t *testing.T) {
	target := &countingResyncer{}
	s, err := NewScheduler("*/5 * * * *", target, time.Second)
	assert.Nil(t, err)

	s.run()
	assert.Equal(t, int32(1), target.calls.Load())
	assert.True(t, target.ctxOK.Load())

	target.err = errors.New("connection refused")
	s.run()
	assert.Equal(t, int32(2), target.calls.Load())
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	_, err := NewScheduler("cada hora", &countingResyncer{}, time.Second)
	assert.NotNil(t, err)
}
