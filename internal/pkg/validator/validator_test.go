package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:05", "17:30", "23:59"}
	invalid := []string{"24:00", "9:05", "12:60", "12:5", "noon", ""}
	for _, c := range valid {
		if !IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = true, want false", c)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"super_admin", "manager"}
	if !IsInSlice("manager", slice) {
		t.Errorf("IsInSlice(manager) = false, want true")
	}
	if IsInSlice("employee", slice) {
		t.Errorf("IsInSlice(employee) = true, want false")
	}
	if IsInSlice("manager", nil) {
		t.Errorf("IsInSlice on nil slice = true, want false")
	}
}

func TestHasDuplicates(t *testing.T) {
	if HasDuplicates([]string{"a", "b"}) {
		t.Errorf("HasDuplicates([a b]) = true, want false")
	}
	if !HasDuplicates([]string{"a", "b", "a"}) {
		t.Errorf("HasDuplicates([a b a]) = false, want true")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "page", Message: "page must be a positive number"},
		{Field: "limit", Message: "limit must not exceed 100"},
	}
	if got := errs.Error(); got != "page: page must be a positive number; limit: limit must not exceed 100" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if m["limit"] != "limit must not exceed 100" || len(m) != 2 {
		t.Errorf("ToMap() = %v", m)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"admin@company.com", "first.last+tag@sub.example.co"}
	invalid := []string{"", "admin", "admin@company", "@company.com", "a b@company.com"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, want false", e)
		}
	}
}
