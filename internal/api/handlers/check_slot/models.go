package check_slot

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	checkSlot "github.com/m04kA/SMC-StaffingService/internal/usecase/check_slot"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// CheckSlotResponse HTTP response model
type CheckSlotResponse struct {
	Date      string              `json:"date"`
	Conflict  bool                `json:"conflict"`
	Conflicts []ConflictingWindow `json:"conflicts"`
}

// ConflictingWindow пересекающееся резервирование
type ConflictingWindow struct {
	Kind     string  `json:"kind"`
	ID       int64   `json:"id"`
	TimeFrom *string `json:"timeFrom,omitempty"`
	TimeTo   *string `json:"timeTo,omitempty"`
	Status   string  `json:"status"`
}

// parseQuery собирает запрос use case из query параметров
// date, timeFrom, timeTo, kinds (через запятую), excludeKind, excludeId
func parseQuery(q url.Values) (*checkSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, q.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	req := &checkSlot.Request{Date: date}

	if raw := q.Get("timeFrom"); raw != "" {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("timeFrom: %w", err)
		}
		req.TimeFrom = &t
	}
	if raw := q.Get("timeTo"); raw != "" {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("timeTo: %w", err)
		}
		req.TimeTo = &t
	}

	if raw := q.Get("kinds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				req.Kinds = append(req.Kinds, domain.ReservationKind(part))
			}
		}
	}

	excludeKind, excludeID := q.Get("excludeKind"), q.Get("excludeId")
	if excludeKind != "" || excludeID != "" {
		id, err := strconv.ParseInt(excludeID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("excludeId: %w", err)
		}
		req.Exclude = &domain.ReservationRef{Kind: domain.ReservationKind(excludeKind), ID: id}
	}

	return req, nil
}

func fromUseCaseResponse(date string, resp *checkSlot.Response) *CheckSlotResponse {
	conflicts := make([]ConflictingWindow, 0, len(resp.Conflicts))
	for _, w := range resp.Conflicts {
		item := ConflictingWindow{Kind: string(w.Kind), ID: w.ID, Status: string(w.Status)}
		if w.TimeFrom != nil {
			s := w.TimeFrom.String()
			item.TimeFrom = &s
		}
		if w.TimeTo != nil {
			s := w.TimeTo.String()
			item.TimeTo = &s
		}
		conflicts = append(conflicts, item)
	}
	return &CheckSlotResponse{Date: date, Conflict: resp.Conflict, Conflicts: conflicts}
}
