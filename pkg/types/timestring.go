package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// timeLayout формат времени слота (HH:MM, 24-часовой)
const timeLayout = "15:04"

// TimeString время в формате "HH:MM" (например, "09:00")
// Используется для времени слотов и бронирований: в БД хранится как TIME,
// по HTTP передается строкой
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM: %w", s, err)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что значение соответствует формату HH:MM
func (ts TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return fmt.Errorf("invalid time %q: expected HH:MM", string(ts))
	}
	return nil
}

// asTime парсит значение во внутренний time.Time (дата не значима)
func (ts TimeString) asTime() (time.Time, error) {
	return time.Parse(timeLayout, string(ts))
}

// IsBefore возвращает true, если ts строго раньше other
// Некорректные значения считаются не раньше ничего
func (ts TimeString) IsBefore(other TimeString) bool {
	a, err := ts.asTime()
	if err != nil {
		return false
	}
	b, err := other.asTime()
	if err != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, err := ts.asTime()
	if err != nil {
		return false
	}
	b, err := other.asTime()
	if err != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes возвращает время через minutes минут (в пределах суток)
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := ts.asTime()
	if err != nil {
		return "", err
	}
	return TimeString(t.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// MarshalJSON сериализует TimeString в JSON строку
func (ts TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(ts))
}

// UnmarshalJSON десериализует TimeString из JSON строки с валидацией формата
func (ts *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает TIME (time.Time), строку и []byte
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case string:
		return ts.scanString(v)
	case []byte:
		return ts.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// Postgres TIME может приходить как "09:00:00"
	for _, layout := range []string{timeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*ts = NewTimeString(t)
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into TimeString", s)
}
