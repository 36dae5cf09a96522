package dashboard

import "context"

type DashboardService interface {
	// GetDashboard returns counters and the recent lists (admin/manager)
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
