package config

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"gopkg.in/yaml.v3"
)

// policySeed mirrors the stored timesheetApprovalConfig document
type policySeed struct {
	WhoCanApprove []string `yaml:"whoCanApprove"`
	WhoCanReopen  []string `yaml:"whoCanReopen"`
	RequireSubmit *bool    `yaml:"requireSubmit"`
}

// LoadApprovalPolicy reads the approval policy seed file. An empty path
// yields the built-in default. Fields missing from the file keep their
// default value; unknown roles are rejected.
func LoadApprovalPolicy(path string) (policy.ApprovalPolicy, error) {
	if path == "" {
		return policy.Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return policy.ApprovalPolicy{}, fmt.Errorf("read approval policy %s: %w", path, err)
	}

	var seed policySeed
	if err := yaml.Unmarshal(b, &seed); err != nil {
		return policy.ApprovalPolicy{}, fmt.Errorf("parse approval policy %s: %w", path, err)
	}

	req := policy.UpdatePolicyRequest{
		WhoCanApprove: seed.WhoCanApprove,
		WhoCanReopen:  seed.WhoCanReopen,
		RequireSubmit: seed.RequireSubmit,
	}
	if err := req.Validate(); err != nil {
		return policy.ApprovalPolicy{}, fmt.Errorf("approval policy %s: %w", path, err)
	}

	return req.Apply(policy.Default()), nil
}
