package api

import (
	"fmt"
	"strings"

	"rodizio/internal/reference"
	"rodizio/internal/scheme"
)

type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Коды ошибок, которыми будем пользоваться
const (
	ErrRequired        = "required"
	ErrPatternMismatch = "pattern_mismatch"
	ErrRangeOrder      = "range_order"
	ErrWeekdayInvalid  = "weekday_invalid"
	ErrDigitInvalid    = "digit_invalid"
	ErrDigitDuplicate  = "digit_duplicate"
	ErrEnumInvalid     = "enum_invalid"
	ErrNotFound        = "not_found"
)

func ferr(code, field, message string) FieldError {
	return FieldError{Code: code, Field: field, Message: message}
}

// truckVehicleTypes — обязательный состав vehicle_types у схем с vuc_restrictions
// (ZMRC и VER): ровно ["Trucks", "VUCs"], в этом порядке.
var truckVehicleTypes = []string{"Trucks", "VUCs"}

// ValidateDocument прогоняет документ по всем проверяемым свойствам.
// Пустой результат — документ годен к раздаче.
func ValidateDocument(doc scheme.Document, catalogs map[string]reference.Catalog) []FieldError {
	var errs []FieldError

	weekdayCat, hasWeekdayCat := catalogs["weekdays"]
	vehicleCat, hasVehicleCat := catalogs["vehicle_types"]

	validKey := func(key string) bool {
		if hasWeekdayCat {
			return weekdayCat.Has(key)
		}
		return scheme.IsWeekdayKey(key)
	}

	for _, id := range doc.Keys() {
		s := doc[id]

		// 1) name обязателен и непуст
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, ferr(ErrRequired, id+".name", "Scheme '"+id+"' must have a non-empty name"))
		}

		// 2) restriction_times / vuc_restrictions: ключи из словаря, интервалы валидны
		errs = append(errs, checkTimeMap(id+".restriction_times", s.RestrictionTimes, validKey)...)
		errs = append(errs, checkTimeMap(id+".vuc_restrictions", s.VUCRestrictions, validKey)...)

		// 3) plate_restrictions: только будни, одиночные цифры, без дублей в пределах дня
		for key, digits := range s.PlateRestrictions {
			field := id + ".plate_restrictions." + key
			if !scheme.IsWeekday(key) {
				errs = append(errs, ferr(ErrWeekdayInvalid, field,
					fmt.Sprintf("Key %q is not a weekday (monday..friday)", key)))
			}
			seen := map[string]bool{}
			for i, d := range digits {
				df := fmt.Sprintf("%s[%d]", field, i)
				if len(d) != 1 || d[0] < '0' || d[0] > '9' {
					errs = append(errs, ferr(ErrDigitInvalid, df,
						fmt.Sprintf("Value %q is not a single decimal digit", d)))
					continue
				}
				if seen[d] {
					errs = append(errs, ferr(ErrDigitDuplicate, df,
						fmt.Sprintf("Digit %q repeats within %q", d, key)))
				}
				seen[d] = true
			}
		}

		// 4) affected_area: описание плюс либо границы, либо ссылка на карту
		if s.AffectedArea == nil {
			errs = append(errs, ferr(ErrRequired, id+".affected_area", "Scheme '"+id+"' must describe its affected area"))
		} else if len(s.AffectedArea.Boundaries) == 0 && strings.TrimSpace(s.AffectedArea.MapLink) == "" {
			errs = append(errs, ferr(ErrRequired, id+".affected_area",
				"Affected area needs either boundaries or a map_link"))
		}

		// 5) vehicle_types: значения из справочника
		if hasVehicleCat {
			for i, vt := range s.VehicleTypes {
				if !vehicleCat.Has(vt) {
					errs = append(errs, ferr(ErrEnumInvalid, fmt.Sprintf("%s.vehicle_types[%d]", id, i),
						fmt.Sprintf("Unknown vehicle type %q", vt)))
				}
			}
		}

		// 6) схемы с vuc_restrictions (ZMRC, VER) возят ровно Trucks + VUCs
		if s.VUCRestrictions != nil && !equalStrings(s.VehicleTypes, truckVehicleTypes) {
			errs = append(errs, ferr(ErrEnumInvalid, id+".vehicle_types",
				fmt.Sprintf("Truck-zone scheme must list exactly %v", truckVehicleTypes)))
		}
	}

	return errs
}

func checkTimeMap(prefix string, m map[string]scheme.TimeRanges, validKey func(string) bool) []FieldError {
	var errs []FieldError
	for key, ranges := range m {
		field := prefix + "." + key
		if !validKey(key) {
			errs = append(errs, ferr(ErrWeekdayInvalid, field,
				fmt.Sprintf("Key %q is not in the weekdays catalog", key)))
		}
		for i, r := range ranges {
			if _, _, err := scheme.ParseRange(r); err != nil {
				code := ErrPatternMismatch
				if strings.Contains(err.Error(), "start must precede end") {
					code = ErrRangeOrder
				}
				errs = append(errs, ferr(code, fmt.Sprintf("%s[%d]", field, i), err.Error()))
			}
		}
	}
	return errs
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
