package domain

import (
	"errors"
	"time"
)

// ErrInvalidWeekday название дня недели не из канонического списка
var ErrInvalidWeekday = errors.New("domain: invalid weekday")

// Weekday полное английское название дня недели с заглавной буквы ("Monday")
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays все дни недели в порядке с понедельника
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf возвращает день недели календарной даты (григорианский календарь)
func WeekdayOf(date time.Time) Weekday {
	return Weekday(date.Weekday().String())
}

// ParseWeekday проверяет название дня недели
// Регистр важен: "monday" и "Mon" не принимаются
func ParseWeekday(s string) (Weekday, error) {
	day := Weekday(s)
	if !day.IsValid() {
		return "", ErrInvalidWeekday
	}
	return day, nil
}

// IsValid returns true if the weekday is one of the seven canonical names
func (w Weekday) IsValid() bool {
	for _, day := range Weekdays {
		if w == day {
			return true
		}
	}
	return false
}

func (w Weekday) String() string {
	return string(w)
}
