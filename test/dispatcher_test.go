package test

import (
	"social_sync/logic"
	"social_sync/test/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupDispatcherTest(t *testing.T) (*gomock.Controller, logic.IDispatcher) {

	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	setupDummyLogger(mockLogger)
	setupDummyMetrics(mockMetrics)

	return ctrl, logic.NewDispatcher(mockLogger, mockMetrics)
}

func waitForSignal(t *testing.T, ch chan struct{}) {
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("Job did not run in time")
	}
}

func Test_Dispatcher_Runs_Accepted_Job(t *testing.T) {

	ctrl, d := setupDispatcherTest(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	accepted := d.Submit("hello-job", func() { close(done) })
	assert.True(t, accepted)
	waitForSignal(t, done)
}

func Test_Dispatcher_Rejects_When_Saturated(t *testing.T) {

	ctrl, d := setupDispatcherTest(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	defer close(release)

	// Workers plus queue hold a bounded number of blocking jobs; well past
	// that, a submission must come back rejected.
	rejected := false
	acceptedCount := 0
	for i := 0; i < 100; i++ {
		if d.Submit("blocker", func() { <-release }) {
			acceptedCount++
		} else {
			rejected = true
			break
		}
	}
	assert.True(t, rejected)
	assert.LessOrEqual(t, acceptedCount, 69)
}

func Test_Dispatcher_Survives_Panicking_Job(t *testing.T) {

	ctrl, d := setupDispatcherTest(t)
	defer ctrl.Finish()

	panicked := make(chan struct{})
	d.Submit("bad-job", func() {
		defer close(panicked)
		panic("boom")
	})
	waitForSignal(t, panicked)

	done := make(chan struct{})
	assert.True(t, d.Submit("good-job", func() { close(done) }))
	waitForSignal(t, done)
}
