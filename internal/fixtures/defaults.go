package fixtures

import (
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

func timePtr(v string) *time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return &t
}

// ==========================================
// DEFAULT USERS
// ==========================================

// GetDefaultUsers returns the bundled user directory used when the users
// collection is missing or unreadable
func GetDefaultUsers() []user.User {
	return []user.User{
		{ID: "1", Name: "Admin User", Email: "admin@company.com", Role: user.RoleSuperAdmin, Branch: "Headquarters", Department: "Management", KioskNumber: "K001", StartDate: "2020-01-15", IsActive: true},
		{ID: "2", Name: "Sarah Manager", Email: "sarah@company.com", Role: user.RoleManager, Branch: "Headquarters", Department: "Operations", KioskNumber: "K002", StartDate: "2021-03-20", IsActive: true},
		{ID: "3", Name: "John Employee", Email: "john@company.com", Role: user.RoleEmployee, Branch: "Headquarters", Department: "Engineering", KioskNumber: "K003", StartDate: "2022-06-10", IsActive: true},
		{ID: "4", Name: "Emily Davis", Email: "emily@company.com", Role: user.RoleEmployee, Branch: "North Branch", Department: "Sales", KioskNumber: "K004", StartDate: "2022-09-01", IsActive: true},
		{ID: "5", Name: "Michael Chen", Email: "michael@company.com", Role: user.RoleManager, Branch: "North Branch", Department: "Sales", KioskNumber: "K005", StartDate: "2021-11-15", IsActive: true},
		{ID: "6", Name: "Lisa Anderson", Email: "lisa@company.com", Role: user.RoleEmployee, Branch: "South Branch", Department: "Support", KioskNumber: "K006", StartDate: "2023-02-01", IsActive: false},
	}
}

// ==========================================
// DEFAULT ATTENDANCE
// ==========================================

// GetDefaultAttendance returns the bundled attendance records
func GetDefaultAttendance() []attendance.Record {
	return []attendance.Record{
		{ID: "1", UserID: "3", UserName: "John Employee", Date: "2024-01-15", ClockIn: "08:55", ClockOut: strPtr("17:30"), DurationHours: 8.6, Status: attendance.StatusPresent, Branch: "Headquarters"},
		{ID: "2", UserID: "4", UserName: "Emily Davis", Date: "2024-01-15", ClockIn: "09:20", ClockOut: strPtr("18:00"), DurationHours: 8.7, Status: attendance.StatusLate, Branch: "North Branch"},
		{ID: "3", UserID: "6", UserName: "Lisa Anderson", Date: "2024-01-15", ClockIn: "08:45", ClockOut: strPtr("17:15"), DurationHours: 8.5, Status: attendance.StatusPresent, Branch: "South Branch"},
		{ID: "4", UserID: "2", UserName: "Sarah Manager", Date: "2024-01-15", ClockIn: "08:30", ClockOut: strPtr("17:45"), DurationHours: 9.3, Status: attendance.StatusPresent, Branch: "Headquarters"},
		{ID: "5", UserID: "3", UserName: "John Employee", Date: "2024-01-16", ClockIn: "09:00", ClockOut: strPtr("17:00"), DurationHours: 8, Status: attendance.StatusPresent, Branch: "Headquarters"},
		{ID: "6", UserID: "4", UserName: "Emily Davis", Date: "2024-01-16", ClockIn: "08:50", ClockOut: nil, DurationHours: 0, Status: attendance.StatusPresent, Branch: "North Branch"},
		{ID: "7", UserID: "5", UserName: "Michael Chen", Date: "2024-01-16", ClockIn: "00:00", ClockOut: nil, DurationHours: 0, Status: attendance.StatusOnLeave, Branch: "North Branch"},
		{ID: "8", UserID: "6", UserName: "Lisa Anderson", Date: "2024-01-16", ClockIn: "00:00", ClockOut: nil, DurationHours: 0, Status: attendance.StatusAbsent, Branch: "South Branch"},
		{ID: "9", UserID: "3", UserName: "John Employee", Date: "2024-01-17", ClockIn: "09:35", ClockOut: strPtr("18:05"), DurationHours: 8.5, Status: attendance.StatusLate, Branch: "Headquarters"},
		{ID: "10", UserID: "2", UserName: "Sarah Manager", Date: "2024-01-17", ClockIn: "08:40", ClockOut: strPtr("17:40"), DurationHours: 9, Status: attendance.StatusPresent, Branch: "Headquarters"},
	}
}

// ==========================================
// DEFAULT TIMESHEETS
// ==========================================

// GetDefaultTimesheets returns the bundled timesheets, one per lifecycle state
func GetDefaultTimesheets() []timesheet.Timesheet {
	return []timesheet.Timesheet{
		{ID: "1", OwnerUserID: "3", OwnerName: "John Employee", PeriodStart: "2024-01-08", PeriodEnd: "2024-01-14", TotalHours: 40, State: timesheet.StateApproved,
			SubmittedAt: timePtr("2024-01-14T17:00:00Z"), ApprovedAt: timePtr("2024-01-15T09:00:00Z"), ApprovedBy: strPtr("Sarah Manager")},
		{ID: "2", OwnerUserID: "4", OwnerName: "Emily Davis", PeriodStart: "2024-01-08", PeriodEnd: "2024-01-14", TotalHours: 38.5, State: timesheet.StateSubmitted,
			SubmittedAt: timePtr("2024-01-14T18:00:00Z")},
		{ID: "3", OwnerUserID: "6", OwnerName: "Lisa Anderson", PeriodStart: "2024-01-08", PeriodEnd: "2024-01-14", TotalHours: 32, State: timesheet.StateDeclined,
			SubmittedAt: timePtr("2024-01-14T16:30:00Z")},
		{ID: "4", OwnerUserID: "3", OwnerName: "John Employee", PeriodStart: "2024-01-15", PeriodEnd: "2024-01-21", TotalHours: 25, State: timesheet.StateDraft},
		{ID: "5", OwnerUserID: "2", OwnerName: "Sarah Manager", PeriodStart: "2024-01-08", PeriodEnd: "2024-01-14", TotalHours: 42, State: timesheet.StateSubmitted,
			SubmittedAt: timePtr("2024-01-14T19:15:00Z")},
	}
}
