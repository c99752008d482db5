package create_blocked_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffingService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffingService/internal/api/middleware"
	createBlockedDate "github.com/m04kA/SMC-StaffingService/internal/usecase/create_blocked_date"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidFormat      = "некорректный формат даты или времени"
	msgInvalidInput       = "startTime и endTime задаются вместе"
	msgMalformedWindow    = "время начала должно быть раньше времени окончания"
	msgSlotConflict       = "на выбранное время уже есть резервирования"
)

type Handler struct {
	useCase CreateBlockedDateUseCase
	logger  Logger
}

func NewHandler(useCase CreateBlockedDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /blocked-dates - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createBlockedDate.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /blocked-dates - Conflicts on %s: %d", req.Date, len(conflictErr.Conflicts))
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Code:      http.StatusConflict,
				Message:   msgSlotConflict,
				Conflicts: FromConflicts(conflictErr.Conflicts),
			})

		case errors.Is(err, createBlockedDate.ErrSlotConflict):
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBlockedDate.ErrMalformedWindow):
			handlers.RespondBadRequest(w, msgMalformedWindow)

		case errors.Is(err, createBlockedDate.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blocked-dates - Failed to create blocked date: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-dates - Blocked date created: id=%d, date=%s, whole_day=%t", result.ID, req.Date, result.WholeDay)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
