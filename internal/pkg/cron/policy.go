package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
)

// PolicyJobs keeps the cached approval policy in step with the store when it
// is edited outside this process.
type PolicyJobs struct {
	provider policy.Provider
	interval time.Duration
}

func NewPolicyJobs(provider policy.Provider, interval time.Duration) *PolicyJobs {
	return &PolicyJobs{provider: provider, interval: interval}
}

func (j *PolicyJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reload_approval_policy", j.interval, j.ReloadApprovalPolicy)
}

// ReloadApprovalPolicy re-reads the stored approval policy
func (j *PolicyJobs) ReloadApprovalPolicy(ctx context.Context) error {
	if err := j.provider.Reload(ctx); err != nil {
		return fmt.Errorf("reload approval policy: %w", err)
	}
	return nil
}
