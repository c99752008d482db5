package get_available_staff

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.TimeFrom.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeFrom format: %v", ErrInvalidInput, err)
	}
	if err := req.TimeTo.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeTo format: %v", ErrInvalidInput, err)
	}

	// Нулевой интервал допустим: в него укладывается любое окно дня
	if req.TimeFrom.IsAfter(req.TimeTo) {
		return fmt.Errorf("%w: %s-%s", ErrMalformedWindow, req.TimeFrom, req.TimeTo)
	}

	return nil
}
