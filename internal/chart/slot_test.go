package chart_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"

	"github.com/katiamach/rainfall-console/internal/chart"
	mock "github.com/katiamach/rainfall-console/internal/chart/mock"
)

var errTest = errors.New("test error")

func config(v string) func() (interface{}, error) {
	return func() (interface{}, error) { return v, nil }
}

func TestSlotReplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mock.NewMockLibrary(ctrl)
	first := mock.NewMockInstance(ctrl)
	second := mock.NewMockInstance(ctrl)

	slot := chart.NewSlot(lib, "chart-historico")

	gomock.InOrder(
		lib.EXPECT().Create("chart-historico", "first").Return(first, nil),
		first.EXPECT().Destroy(),
		lib.EXPECT().Create("chart-historico", "second").Return(second, nil),
	)

	assert.Nil(t, slot.Replace(config("first")))
	assert.Nil(t, slot.Replace(config("second")))

	cfg, ok := slot.Config()
	assert.True(t, ok)
	assert.Equal(t, "second", cfg)
}

func TestSlotReleasesOnBuildError(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mock.NewMockLibrary(ctrl)
	inst := mock.NewMockInstance(ctrl)

	slot := chart.NewSlot(lib, "chart-historico")

	lib.EXPECT().Create("chart-historico", "first").Return(inst, nil)
	inst.EXPECT().Destroy().Times(1)

	assert.Nil(t, slot.Replace(config("first")))

	err := slot.Replace(func() (interface{}, error) { return nil, errTest })
	assert.True(t, errors.Is(err, errTest))

	_, ok := slot.Config()
	assert.False(t, ok)

	// Nothing left to destroy.
	slot.Release()
}

func TestSlotReleasesOnCreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := mock.NewMockLibrary(ctrl)
	inst := mock.NewMockInstance(ctrl)

	slot := chart.NewSlot(lib, "chart-validacion")

	gomock.InOrder(
		lib.EXPECT().Create("chart-validacion", "first").Return(inst, nil),
		inst.EXPECT().Destroy(),
		lib.EXPECT().Create("chart-validacion", "second").Return(nil, errTest),
	)

	assert.Nil(t, slot.Replace(config("first")))

	err := slot.Replace(config("second"))
	assert.True(t, errors.Is(err, errTest))

	_, ok := slot.Config()
	assert.False(t, ok)
}

func TestRemoteLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mock.NewMockPublisher(ctrl)

	lib := chart.NewRemote(pub)

	gomock.InOrder(
		pub.EXPECT().Publish(chart.EventCreate, chart.Message{ID: 1, Canvas: "c", Config: "cfg"}),
		pub.EXPECT().Publish(chart.EventDestroy, chart.Message{ID: 1, Canvas: "c"}).Times(1),
	)

	inst, err := lib.Create("c", "cfg")
	assert.Nil(t, err)

	inst.Destroy()
	inst.Destroy()
}
