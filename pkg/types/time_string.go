package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesInDay количество минут в сутках
const MinutesInDay = 24 * 60

const (
	// StartOfDay начало суток
	StartOfDay TimeString = "00:00"
	// EndOfDay конец суток (исключительная граница, допустима только как конец интервала)
	EndOfDay TimeString = "24:00"
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time string out of range")
)

// TimeString время суток в 24-часовом формате HH:MM с точностью до минуты.
// Пустая строка означает отсутствие значения.
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" (или "HH:MM:SS" из TIME-колонок PostgreSQL)
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes)
}

// FromMinutes создает TimeString из количества минут с начала суток (0..1440)
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MinutesInDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает время в формате HH:MM
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток.
// Для невалидного значения возвращает -1.
func (t TimeString) Minutes() int {
	minutes, err := parseMinutes(string(t))
	if err != nil {
		return -1
	}
	return minutes
}

// AddMinutes прибавляет минуты, результат не может выйти за пределы суток
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	minutes, err := parseMinutes(string(t))
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes + n)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Equal сравнивает время с точностью до минуты ("09:00" == "09:00:00")
func (t TimeString) Equal(other TimeString) bool {
	return t.Minutes() == other.Minutes()
}

// Scan реализует sql.Scanner для колонок TIME
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if !isTwoDigits(parts[0]) || !isTwoDigits(parts[1]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	// Секунды допускаются только нулевые, точность - минута
	if len(parts) == 3 && parts[2] != "00" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if minutes < 0 || minutes > 59 || hours < 0 || hours > 24 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}
	// 24:00 - единственное допустимое значение с часом 24
	if hours == 24 && minutes != 0 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return hours*60 + minutes, nil
}

// isTwoDigits ровно две ASCII цифры, без знака
func isTwoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}
