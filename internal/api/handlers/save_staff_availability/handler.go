package save_staff_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffingService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffingService/internal/service/staff"
	"github.com/m04kA/SMC-StaffingService/internal/service/staff/models"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "сотрудник не найден"
	msgInvalidInput       = "некорректное расписание"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/staff/{staffId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil || staffID <= 0 {
		h.logger.Warn("PUT /staff/{id}/availability - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req models.SaveWeeklyAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SaveWeeklyAvailability(r.Context(), staffID, &req)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, staff.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)
		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("PUT /staff/{id}/availability - Invalid schedule: staff_id=%d, %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /staff/{id}/availability - Failed to save: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/{id}/availability - Schedule saved: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
