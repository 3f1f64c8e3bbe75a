package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// birth_date is free text coming from scanned voter lists, so the year has
// to be fished out. Bengali numerals show up in older imports and are
// transliterated before matching.
var yearPattern = regexp.MustCompile(`(1[89]\d{2}|20\d{2})`)

var bengaliDigits = strings.NewReplacer(
	"০", "0", "১", "1", "২", "2", "৩", "3", "৪", "4",
	"৫", "5", "৬", "6", "৭", "7", "৮", "8", "৯", "9",
)

// ageFromBirthDate extracts a plausible birth year from a free-text birth
// date and returns the age relative to now. ok is false when no usable year
// is present.
func ageFromBirthDate(birthDate string, now time.Time) (int, bool) {
	normalized := bengaliDigits.Replace(birthDate)
	match := yearPattern.FindString(normalized)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	age := now.Year() - year
	if age < 0 || age > 150 {
		return 0, false
	}
	return age, true
}
