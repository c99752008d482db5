package update_booking_schedule

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.Type)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.TimeFrom.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeFrom format: %v", ErrInvalidInput, err)
	}
	if err := req.TimeTo.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeTo format: %v", ErrInvalidInput, err)
	}
	if !req.TimeFrom.IsBefore(req.TimeTo) {
		return fmt.Errorf("%w: %s-%s", ErrMalformedWindow, req.TimeFrom, req.TimeTo)
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
