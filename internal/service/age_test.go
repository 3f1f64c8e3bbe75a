package service

import (
	"testing"
	"time"
)

func TestAgeFromBirthDate(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate string
		wantAge   int
		wantOk    bool
	}{
		{name: "plain year", birthDate: "1985", wantAge: 41, wantOk: true},
		{name: "full date", birthDate: "12/03/1990", wantAge: 36, wantOk: true},
		{name: "bengali numerals", birthDate: "১৯৭৫", wantAge: 51, wantOk: true},
		{name: "bengali full date", birthDate: "০৫-০২-২০০০", wantAge: 26, wantOk: true},
		{name: "no year at all", birthDate: "unknown", wantOk: false},
		{name: "empty", birthDate: "", wantOk: false},
		{name: "future year rejected", birthDate: "2099", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, ok := ageFromBirthDate(tt.birthDate, now)
			if ok != tt.wantOk {
				t.Fatalf("ageFromBirthDate(%q) ok = %v, want %v", tt.birthDate, ok, tt.wantOk)
			}
			if ok && age != tt.wantAge {
				t.Errorf("ageFromBirthDate(%q) = %d, want %d", tt.birthDate, age, tt.wantAge)
			}
		})
	}
}
