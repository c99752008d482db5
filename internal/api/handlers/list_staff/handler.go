package list_staff

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StaffingService/internal/api/handlers"
)

const msgInvalidActiveFlag = "параметр active должен быть true или false"

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

// Handle GET /api/v1/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// По умолчанию только активные сотрудники
	onlyActive := true
	if raw := r.URL.Query().Get("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /staff - Invalid active flag: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidActiveFlag)
			return
		}
		onlyActive = v
	}

	result, err := h.service.ListStaff(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /staff - Failed to list staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff - Staff retrieved successfully: count=%d, only_active=%t", result.Total, onlyActive)
	handlers.RespondJSON(w, http.StatusOK, result)
}
