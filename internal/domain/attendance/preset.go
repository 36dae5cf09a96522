package attendance

import (
	"fmt"
	"time"
)

type DatePreset string

const (
	PresetAll        DatePreset = "all"
	PresetToday      DatePreset = "today"
	PresetYesterday  DatePreset = "yesterday"
	PresetLast7Days  DatePreset = "last7days"
	PresetThisMonth  DatePreset = "thisMonth"
	PresetLastMonth  DatePreset = "lastMonth"
	PresetLast20Days DatePreset = "last20days"
)

// legacy key used by older clients for last20days
const presetLast20DaysLegacy = "20/20"

// ParsePreset maps a query value to a preset. Empty means PresetAll.
func ParsePreset(s string) (DatePreset, error) {
	switch p := DatePreset(s); p {
	case "", PresetAll:
		return PresetAll, nil
	case PresetToday, PresetYesterday, PresetLast7Days, PresetThisMonth, PresetLastMonth, PresetLast20Days:
		return p, nil
	}
	if s == presetLast20DaysLegacy {
		return PresetLast20Days, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// ResolvePreset returns the single anchor date a preset stands for, formatted
// as YYYY-MM-DD in now's location. Records match by equality with that date,
// so "last7days" means the day seven days ago, not the range up to today.
// ok is false for PresetAll, which applies no date predicate.
func ResolvePreset(p DatePreset, now time.Time) (date string, ok bool) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	var anchor time.Time
	switch p {
	case PresetToday:
		anchor = today
	case PresetYesterday:
		anchor = today.AddDate(0, 0, -1)
	case PresetLast7Days:
		anchor = today.AddDate(0, 0, -7)
	case PresetThisMonth:
		anchor = time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	case PresetLastMonth:
		anchor = time.Date(y, m-1, 1, 0, 0, 0, 0, now.Location())
	case PresetLast20Days:
		anchor = today.AddDate(0, 0, -20)
	default:
		return "", false
	}

	return anchor.Format(time.DateOnly), true
}
