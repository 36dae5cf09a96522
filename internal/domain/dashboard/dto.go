package dashboard

import (
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timesheet"
)

// recent lists on the dashboard are capped at this many entries
const RecentLimit = 5

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Stats             StatsResponse                   `json:"stats"`
	RecentActivity    []attendance.AttendanceResponse `json:"recent_activity"`
	PendingTimesheets []timesheet.TimesheetResponse   `json:"pending_timesheets"`
}

// StatsResponse holds the headline counters
type StatsResponse struct {
	TotalUsers         int     `json:"total_users"`
	ActiveUsers        int     `json:"active_users"`
	TodayClockIns      int     `json:"today_clock_ins"`    // attendance records dated today
	PendingTimesheets  int     `json:"pending_timesheets"` // status = submitted
	ApprovedHoursTotal float64 `json:"approved_hours_total"`
	Date               string  `json:"date"` // Format: "YYYY-MM-DD"
}
