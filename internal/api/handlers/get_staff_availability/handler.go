package get_staff_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffingService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffingService/internal/service/staff"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgNotFound       = "сотрудник не найден"
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

// Handle GET /api/v1/staff/{staffId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil || staffID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.GetWeeklyAvailability(r.Context(), staffID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			h.logger.Warn("GET /staff/{id}/availability - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /staff/{id}/availability - Failed to get schedule: staff_id=%d, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
