package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	// GetApprovalPolicy handles GET /settings/timesheet-approval
	GetApprovalPolicy(w http.ResponseWriter, r *http.Request)
	// UpdateApprovalPolicy handles PUT /settings/timesheet-approval
	UpdateApprovalPolicy(w http.ResponseWriter, r *http.Request)
	// ReloadApprovalPolicy handles POST /settings/timesheet-approval/reload
	ReloadApprovalPolicy(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	policyService policy.PolicyService
}

func NewSettingsHandler(policyService policy.PolicyService) SettingsHandler {
	return &settingsHandlerImpl{policyService: policyService}
}

// GetApprovalPolicy implements SettingsHandler.
func (h *settingsHandlerImpl) GetApprovalPolicy(w http.ResponseWriter, r *http.Request) {
	result, err := h.policyService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateApprovalPolicy implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateApprovalPolicy(w http.ResponseWriter, r *http.Request) {
	var req policy.UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.policyService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Approval policy updated successfully", result)
}

// ReloadApprovalPolicy implements SettingsHandler.
func (h *settingsHandlerImpl) ReloadApprovalPolicy(w http.ResponseWriter, r *http.Request) {
	result, err := h.policyService.ReloadPolicy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Approval policy reloaded", result)
}
