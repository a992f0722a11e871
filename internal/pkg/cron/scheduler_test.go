package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerFiresJobOnStart(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)
	s.AddJob("touch", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not fire on start")
	}
}

func TestSchedulerStopWaitsForJobs(t *testing.T) {
	s := NewScheduler()
	var runs int
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		runs++
		return nil
	})

	s.Start()
	s.Stop()

	// Stop returned, so the immediate first run has finished.
	assert.Equal(t, 1, runs)
}
