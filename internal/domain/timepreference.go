package domain

import "fmt"

// TimePreference предпочитаемое время суток для впечатления
type TimePreference string

const (
	TimePreferenceMorning   TimePreference = "morning"
	TimePreferenceAfternoon TimePreference = "afternoon"
	TimePreferenceNight     TimePreference = "night"
)

// IsValid проверяет, что значение входит в закрытый набор
func (t TimePreference) IsValid() bool {
	switch t {
	case TimePreferenceMorning, TimePreferenceAfternoon, TimePreferenceNight:
		return true
	default:
		return false
	}
}

// ParseTimePreference парсит предпочитаемое время суток
func ParseTimePreference(s string) (TimePreference, error) {
	t := TimePreference(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown time preference: %q", s)
	}
	return t, nil
}
