package create_blocked_date

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	createBlockedDate "github.com/m04kA/SMC-StaffingService/internal/usecase/create_blocked_date"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// CreateBlockedDateRequest HTTP request model
// startTime/endTime не переданы - блокируется весь день
type CreateBlockedDateRequest struct {
	Date      string  `json:"date"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// BlockedDateResponse HTTP response model
type BlockedDateResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	WholeDay  bool    `json:"wholeDay"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ConflictResponse тело ответа 409 со списком пересечений
type ConflictResponse struct {
	Code      int                 `json:"code"`
	Message   string              `json:"message"`
	Conflicts []ConflictingWindow `json:"conflicts"`
}

// ConflictingWindow резервирование, мешающее блокировке
type ConflictingWindow struct {
	Kind     string  `json:"kind"`
	ID       int64   `json:"id"`
	TimeFrom *string `json:"timeFrom,omitempty"`
	TimeTo   *string `json:"timeTo,omitempty"`
	Status   string  `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBlockedDateRequest) ToUseCaseRequest(userID int64) (*createBlockedDate.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	start, err := parseOptionalTime(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	end, err := parseOptionalTime(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &createBlockedDate.Request{
		UserID:    userID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Reason:    r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBlockedDate.Response) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:        resp.ID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: timeToString(resp.StartTime),
		EndTime:   timeToString(resp.EndTime),
		WholeDay:  resp.WholeDay,
		Reason:    resp.Reason,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

// FromConflicts конвертирует пересечения в элементы ответа
func FromConflicts(windows []domain.ReservationWindow) []ConflictingWindow {
	result := make([]ConflictingWindow, 0, len(windows))
	for _, w := range windows {
		result = append(result, ConflictingWindow{
			Kind:     string(w.Kind),
			ID:       w.ID,
			TimeFrom: timeToString(w.TimeFrom),
			TimeTo:   timeToString(w.TimeTo),
			Status:   string(w.Status),
		})
	}
	return result
}

func parseOptionalTime(s *string) (*types.TimeString, error) {
	if s == nil {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func timeToString(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
