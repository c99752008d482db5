package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.Type)
	}

	if req.Title == "" || len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be 1..%d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Type == domain.BookingTypeService && (req.ServiceID == nil || *req.ServiceID <= 0) {
		return fmt.Errorf("%w: serviceID is required for service booking", ErrInvalidInput)
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

	// Пустые и перевёрнутые интервалы отклоняются до проверки конфликтов и подбора персонала
	if !req.TimeFrom.IsBefore(req.TimeTo) {
		return fmt.Errorf("%w: %s-%s", ErrMalformedWindow, req.TimeFrom, req.TimeTo)
	}

	if req.Status != nil {
		if _, err := parseInitialStatus(*req.Status); err != nil {
			return err
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// parseInitialStatus новое бронирование может быть только в ожидании, подтверждено или зарезервировано
func parseInitialStatus(s string) (domain.BookingStatus, error) {
	switch status := domain.BookingStatus(s); status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusReserved:
		return status, nil
	default:
		return "", fmt.Errorf("%w: invalid initial status %q", ErrInvalidInput, s)
	}
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
