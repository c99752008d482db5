package conflicts

import (
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// Policy правило сравнения границ интервалов
type Policy int

const (
	// Inclusive касание границ считается конфликтом: [09:00,10:00] и [10:00,11:00] пересекаются
	Inclusive Policy = iota
	// Exclusive строгое пересечение полуоткрытых интервалов
	Exclusive
)

// Candidate проверяемое действие в календаре
// From и To равны nil для действия на весь день (например, новая блокировка даты)
type Candidate struct {
	Date time.Time
	From *types.TimeString
	To   *types.TimeString

	// Exclude резервирование, которое не конфликтует само с собой (перенос бронирования)
	Exclude *domain.ReservationRef
}

// IsWholeDay returns true if the candidate has no time bounds
func (c Candidate) IsWholeDay() bool {
	return c.From == nil || c.To == nil
}

// Checker проверяет пересечение кандидата с существующими резервированиями
type Checker struct {
	policy Policy
}

// NewChecker создает проверку с заданной политикой границ
func NewChecker(policy Policy) *Checker {
	return &Checker{policy: policy}
}

// NewCheckerFromFlag создает проверку по флагу конфигурации
func NewCheckerFromFlag(inclusive bool) *Checker {
	if inclusive {
		return NewChecker(Inclusive)
	}
	return NewChecker(Exclusive)
}

// HasConflict возвращает true при первом найденном конфликте
func (c *Checker) HasConflict(candidate Candidate, existing []domain.ReservationWindow) bool {
	for i := range existing {
		if c.conflicts(candidate, &existing[i]) {
			return true
		}
	}
	return false
}

// FindConflicts возвращает все резервирования, конфликтующие с кандидатом
func (c *Checker) FindConflicts(candidate Candidate, existing []domain.ReservationWindow) []domain.ReservationWindow {
	result := make([]domain.ReservationWindow, 0)
	for i := range existing {
		if c.conflicts(candidate, &existing[i]) {
			result = append(result, existing[i])
		}
	}
	return result
}

func (c *Checker) conflicts(candidate Candidate, existing *domain.ReservationWindow) bool {
	if !existing.IsActive() || !domain.SameDate(candidate.Date, existing.Date) {
		return false
	}
	if candidate.Exclude != nil && *candidate.Exclude == existing.Ref() {
		return false
	}

	// Действие на весь день занимает дату целиком
	if candidate.IsWholeDay() {
		return true
	}

	from, to := candidate.From.Minutes(), candidate.To.Minutes()

	// Блокировка на весь день: [00:00, 24:00], касание границ всегда конфликт
	if existing.IsWholeDay() {
		return from <= types.MinutesInDay && 0 <= to
	}

	exFrom, exTo := existing.TimeFrom.Minutes(), existing.TimeTo.Minutes()
	if c.policy == Exclusive {
		return from < exTo && exFrom < to
	}
	return from <= exTo && exFrom <= to
}
