package scheme

import (
	"fmt"
	"regexp"
	"strconv"
)

// Будние дни — единственные допустимые ключи plate_restrictions.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// Полный словарь ключей restriction_times / vuc_restrictions:
// отдельные дни плюс групповые ключи из регламентов ZMRC/VER.
var WeekdayKeys = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"monday_to_friday", "sundays_and_holidays",
}

func IsWeekday(key string) bool {
	for _, w := range Weekdays {
		if w == key {
			return true
		}
	}
	return false
}

func IsWeekdayKey(key string) bool {
	for _, w := range WeekdayKeys {
		if w == key {
			return true
		}
	}
	return false
}

var rangeRe = regexp.MustCompile(`^(\d{2}):(\d{2})-(\d{2}):(\d{2})$`)

// ParseRange разбирает строку "HH:MM-HH:MM" в минуты от полуночи.
// Ошибка — если формат не тот, час/минута вне диапазона или начало не раньше конца.
func ParseRange(s string) (startMin, endMin int, err error) {
	m := rangeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("time range %q: expected HH:MM-HH:MM", s)
	}
	h1, _ := strconv.Atoi(m[1])
	m1, _ := strconv.Atoi(m[2])
	h2, _ := strconv.Atoi(m[3])
	m2, _ := strconv.Atoi(m[4])
	if h1 > 23 || h2 > 23 || m1 > 59 || m2 > 59 {
		return 0, 0, fmt.Errorf("time range %q: hour must be 00-23, minute 00-59", s)
	}
	startMin = h1*60 + m1
	endMin = h2*60 + m2
	if startMin >= endMin {
		return 0, 0, fmt.Errorf("time range %q: start must precede end", s)
	}
	return startMin, endMin, nil
}
