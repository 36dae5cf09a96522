package attendance

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusOnLeave Status = "on_leave"
)

var Statuses = []string{string(StatusPresent), string(StatusAbsent), string(StatusLate), string(StatusOnLeave)}

// Record is one clock-in/out entry. DurationHours is computed when the
// record is written and is opaque to filtering.
type Record struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	UserName      string  `json:"userName"`
	Date          string  `json:"date"`    // YYYY-MM-DD
	ClockIn       string  `json:"clockIn"` // HH:MM
	ClockOut      *string `json:"clockOut"`
	DurationHours float64 `json:"duration"`
	Status        Status  `json:"status"`
	Branch        string  `json:"branch"`
}

// Duration returns the hours between two HH:MM clock values rounded to one
// decimal place. A missing clockOut yields zero.
func Duration(clockIn string, clockOut *string) float64 {
	if clockOut == nil || *clockOut == "" {
		return 0
	}

	minutes := decimal.NewFromInt(int64(clockMinutes(*clockOut) - clockMinutes(clockIn)))
	hours, _ := minutes.Div(decimal.NewFromInt(60)).Round(1).Float64()
	return hours
}

func clockMinutes(clock string) int {
	hh, mm, _ := strings.Cut(clock, ":")
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return h*60 + m
}
