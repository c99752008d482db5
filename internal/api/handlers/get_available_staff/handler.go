package get_available_staff

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffingService/internal/domain"
	getAvailableStaff "github.com/m04kA/SMC-StaffingService/internal/usecase/get_available_staff"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime     = "некорректный формат времени, ожидается HH:MM"
	msgMalformedWindow = "время начала не может быть позже времени окончания"
)

type Handler struct {
	useCase GetAvailableStaffUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/available?date=2024-02-14&timeFrom=10:00&timeTo=12:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /staff/available - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	timeFrom, errFrom := types.NewTimeStringFromString(query.Get("timeFrom"))
	timeTo, errTo := types.NewTimeStringFromString(query.Get("timeTo"))
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /staff/available - Invalid time: from=%q, to=%q", query.Get("timeFrom"), query.Get("timeTo"))
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableStaff.Request{
		Date:     date,
		TimeFrom: timeFrom,
		TimeTo:   timeTo,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableStaff.ErrMalformedWindow):
			handlers.RespondBadRequest(w, msgMalformedWindow)
		case errors.Is(err, getAvailableStaff.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			h.logger.Error("GET /staff/available - Failed to get available staff: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/available - Available staff retrieved: date=%s, count=%d", query.Get("date"), len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
