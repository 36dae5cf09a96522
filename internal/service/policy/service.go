package policy

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
)

// PolicyServiceImpl caches the approval policy after the first read. The
// cache only changes through Reload or Update.
type PolicyServiceImpl struct {
	repo policy.Repository

	mu      sync.RWMutex
	current *policy.ApprovalPolicy
}

func NewPolicyService(repo policy.Repository) policy.PolicyService {
	return &PolicyServiceImpl{repo: repo}
}

// Current implements policy.Provider.
func (s *PolicyServiceImpl) Current(ctx context.Context) (policy.ApprovalPolicy, error) {
	s.mu.RLock()
	if s.current != nil {
		p := clonePolicy(*s.current)
		s.mu.RUnlock()
		return p, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		if err := s.loadLocked(ctx); err != nil {
			return policy.ApprovalPolicy{}, err
		}
	}
	return clonePolicy(*s.current), nil
}

// Reload implements policy.Provider.
func (s *PolicyServiceImpl) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(ctx)
}

func (s *PolicyServiceImpl) loadLocked(ctx context.Context) error {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", policy.ErrPolicyUnavailable, err)
	}

	if s.current == nil || !equalPolicy(*s.current, p) {
		slog.Info("approval policy loaded",
			"who_can_approve", p.WhoCanApprove,
			"who_can_reopen", p.WhoCanReopen,
			"require_submit", p.RequireSubmission,
		)
	}
	s.current = &p
	return nil
}

// Get implements policy.PolicyService.
func (s *PolicyServiceImpl) Get(ctx context.Context) (policy.PolicyResponse, error) {
	if _, err := user.Authorize(ctx, user.PermissionPolicyView); err != nil {
		return policy.PolicyResponse{}, err
	}

	p, err := s.Current(ctx)
	if err != nil {
		return policy.PolicyResponse{}, err
	}
	return policy.NewPolicyResponse(p), nil
}

// Update implements policy.PolicyService.
func (s *PolicyServiceImpl) Update(ctx context.Context, req policy.UpdatePolicyRequest) (policy.PolicyResponse, error) {
	actor, err := s.requireSuperAdmin(ctx)
	if err != nil {
		return policy.PolicyResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.repo.Get(ctx)
	if err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("%w: %w", policy.ErrPolicyUnavailable, err)
	}

	next := req.Apply(stored)
	if err := s.repo.Save(ctx, next); err != nil {
		return policy.PolicyResponse{}, err
	}
	s.current = &next

	slog.Info("approval policy updated",
		"actor_id", actor.UserID,
		"who_can_approve", next.WhoCanApprove,
		"who_can_reopen", next.WhoCanReopen,
		"require_submit", next.RequireSubmission,
	)

	return policy.NewPolicyResponse(next), nil
}

// ReloadPolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) ReloadPolicy(ctx context.Context) (policy.PolicyResponse, error) {
	if _, err := s.requireSuperAdmin(ctx); err != nil {
		return policy.PolicyResponse{}, err
	}

	if err := s.Reload(ctx); err != nil {
		return policy.PolicyResponse{}, err
	}

	p, err := s.Current(ctx)
	if err != nil {
		return policy.PolicyResponse{}, err
	}
	return policy.NewPolicyResponse(p), nil
}

func (s *PolicyServiceImpl) requireSuperAdmin(ctx context.Context) (user.Session, error) {
	actor, err := user.SessionFromContext(ctx)
	if err != nil {
		return user.Session{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionPolicyManage) {
		return user.Session{}, user.ErrSuperAdminRequired
	}
	return actor, nil
}

func clonePolicy(p policy.ApprovalPolicy) policy.ApprovalPolicy {
	p.WhoCanApprove = slices.Clone(p.WhoCanApprove)
	p.WhoCanReopen = slices.Clone(p.WhoCanReopen)
	return p
}

func equalPolicy(a, b policy.ApprovalPolicy) bool {
	return slices.Equal(a.WhoCanApprove, b.WhoCanApprove) &&
		slices.Equal(a.WhoCanReopen, b.WhoCanReopen) &&
		a.RequireSubmission == b.RequireSubmission
}
