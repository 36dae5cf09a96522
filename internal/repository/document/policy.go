package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/snapshot"
)

type policyRepositoryImpl struct {
	store    snapshot.Store
	fallback policy.ApprovalPolicy
}

// NewPolicyRepository returns a repository that answers with fallback while
// no policy document is stored.
func NewPolicyRepository(store snapshot.Store, fallback policy.ApprovalPolicy) policy.Repository {
	return &policyRepositoryImpl{store: store, fallback: fallback}
}

// Get implements policy.Repository. An absent or unreadable document yields
// the fallback policy.
func (r *policyRepositoryImpl) Get(ctx context.Context) (policy.ApprovalPolicy, error) {
	raw, err := r.store.Get(ctx, snapshot.CollectionApprovalPolicy)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			return r.fallback, nil
		}
		return policy.ApprovalPolicy{}, fmt.Errorf("failed to load approval policy: %w", err)
	}

	var doc policy.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		slog.Warn("approval policy corrupt, using fallback", "error", err)
		return r.fallback, nil
	}

	return doc.ToPolicy(), nil
}

// Save implements policy.Repository.
func (r *policyRepositoryImpl) Save(ctx context.Context, p policy.ApprovalPolicy) error {
	body, err := json.Marshal(p.ToDocument())
	if err != nil {
		return fmt.Errorf("failed to encode approval policy: %w", err)
	}

	if err := r.store.Put(ctx, snapshot.CollectionApprovalPolicy, body); err != nil {
		return fmt.Errorf("failed to save approval policy: %w", err)
	}

	return nil
}
