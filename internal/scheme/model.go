package scheme

import (
	"encoding/json"
	"fmt"
)

// Document — верхний уровень restrictions.json: id схемы -> схема.
// Набор ключей расширяемый (rodizio_municipal, zmrc, ver — не исчерпывающий список).
type Document map[string]*Scheme

// Scheme описывает одну схему ограничения циркуляции.
// Формы полей разные у разных схем (так в исходных регламентах),
// поэтому всё кроме name — опциональное. Неизвестные поля не теряем (Extra).
type Scheme struct {
	Name              string
	RestrictionTimes  map[string]TimeRanges
	PlateRestrictions map[string][]string
	VUCRestrictions   map[string]TimeRanges
	AffectedArea      *AffectedArea
	VehicleTypes      []string
	Exceptions        []string

	// Extra — поля, которых наша модель не знает; сохраняем как есть,
	// чтобы decode->encode не терял пары ключ/значение.
	Extra map[string]json.RawMessage

	// name присутствовал в исходном JSON. Отсутствовавшее имя при encode
	// не превращаем в "name": "" — отсутствующее остаётся отсутствующим.
	hasName bool
}

// AffectedArea — зона действия: либо перечень граничных улиц, либо ссылка на карту CET.
type AffectedArea struct {
	Description string   `json:"description,omitempty"`
	Boundaries  []string `json:"boundaries,omitempty"`
	MapLink     string   `json:"map_link,omitempty"`
}

// TimeRanges — список интервалов "HH:MM-HH:MM".
// Декодер терпимый: принимает и массив строк, и одиночную строку.
type TimeRanges []string

func (t *TimeRanges) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*t = TimeRanges{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*t = TimeRanges(many)
	return nil
}

// известные ключи схемы — всё остальное уходит в Extra
const (
	fieldName              = "name"
	fieldRestrictionTimes  = "restriction_times"
	fieldPlateRestrictions = "plate_restrictions"
	fieldVUCRestrictions   = "vuc_restrictions"
	fieldAffectedArea      = "affected_area"
	fieldVehicleTypes      = "vehicle_types"
	fieldExceptions        = "exceptions"
)

func (s *Scheme) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	take := func(key string, dst interface{}) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		delete(raw, key)
		return nil
	}

	if v, ok := raw[fieldName]; ok {
		if err := json.Unmarshal(v, &s.Name); err != nil {
			return fmt.Errorf("field %q: %w", fieldName, err)
		}
		s.hasName = true
		delete(raw, fieldName)
	}
	if err := take(fieldRestrictionTimes, &s.RestrictionTimes); err != nil {
		return err
	}
	if err := take(fieldPlateRestrictions, &s.PlateRestrictions); err != nil {
		return err
	}
	if err := take(fieldVUCRestrictions, &s.VUCRestrictions); err != nil {
		return err
	}
	if err := take(fieldAffectedArea, &s.AffectedArea); err != nil {
		return err
	}
	if err := take(fieldVehicleTypes, &s.VehicleTypes); err != nil {
		return err
	}
	if err := take(fieldExceptions, &s.Exceptions); err != nil {
		return err
	}

	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

func (s *Scheme) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, 7+len(s.Extra))
	if s.hasName || s.Name != "" {
		out[fieldName] = s.Name
	}
	// отсутствующее поле остаётся отсутствующим — никаких пустых заглушек
	if s.RestrictionTimes != nil {
		out[fieldRestrictionTimes] = s.RestrictionTimes
	}
	if s.PlateRestrictions != nil {
		out[fieldPlateRestrictions] = s.PlateRestrictions
	}
	if s.VUCRestrictions != nil {
		out[fieldVUCRestrictions] = s.VUCRestrictions
	}
	if s.AffectedArea != nil {
		out[fieldAffectedArea] = s.AffectedArea
	}
	if s.VehicleTypes != nil {
		out[fieldVehicleTypes] = s.VehicleTypes
	}
	if s.Exceptions != nil {
		out[fieldExceptions] = s.Exceptions
	}
	for k, v := range s.Extra {
		out[k] = v
	}
	return json.Marshal(out)
}
