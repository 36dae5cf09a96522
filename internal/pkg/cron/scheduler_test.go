package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	reloads atomic.Int32
	err     error
}

func (p *countingProvider) Current(context.Context) (policy.ApprovalPolicy, error) {
	return policy.Default(), nil
}

func (p *countingProvider) Reload(context.Context) error {
	p.reloads.Add(1)
	return p.err
}

func TestScheduler_RunsJobOnInterval(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.AddJob("tick", 10*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load(), "no runs after Stop")
}

func TestScheduler_DisabledJob(t *testing.T) {
	s := NewScheduler()
	s.AddJob("never", 0, func(context.Context) error { return nil })
	assert.Equal(t, 0, s.Len())

	// Stop before Start is a no-op
	s.Stop()
}

func TestScheduler_StopsWithParentContext(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.AddJob("tick", 5*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("jobs did not stop with the parent context")
	}
}

func TestPolicyJobs_Reload(t *testing.T) {
	provider := &countingProvider{}
	s := NewScheduler()
	NewPolicyJobs(provider, time.Minute).RegisterJobs(s)
	require.Equal(t, 1, s.Len())

	s.RunOnce(context.Background())
	assert.Equal(t, int32(1), provider.reloads.Load())

	provider.err = errors.New("store offline")
	err := NewPolicyJobs(provider, time.Minute).ReloadApprovalPolicy(context.Background())
	assert.ErrorIs(t, err, provider.err)
}
