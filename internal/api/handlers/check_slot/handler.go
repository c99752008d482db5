package check_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffingService/internal/api/handlers"
	checkSlot "github.com/m04kA/SMC-StaffingService/internal/usecase/check_slot"
)

const (
	msgInvalidQuery    = "некорректные параметры запроса"
	msgMalformedWindow = "время начала должно быть раньше времени окончания"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := parseQuery(q)
	if err != nil {
		h.logger.Warn("GET /calendar/conflicts - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrMalformedWindow):
			handlers.RespondBadRequest(w, msgMalformedWindow)
		case errors.Is(err, checkSlot.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidQuery)
		default:
			h.logger.Error("GET /calendar/conflicts - Failed to check slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(q.Get("date"), result))
}
