package update_booking_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffingService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffingService/internal/api/middleware"
	"github.com/m04kA/SMC-StaffingService/internal/domain"
	updateSchedule "github.com/m04kA/SMC-StaffingService/internal/usecase/update_booking_schedule"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidBookingType = "некорректный тип бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgNotFound           = "бронирование не найдено"
	msgCannotReschedule   = "отменённое или завершённое бронирование нельзя перенести"
	msgDateInPast         = "нельзя перенести бронирование на прошедшую дату"
	msgMalformedWindow    = "время начала должно быть раньше времени окончания"
	msgSlotConflict       = "новое время пересекается с заблокированным интервалом"
)

type Handler struct {
	useCase UpdateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpdateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingType}/{bookingId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingType := domain.BookingType(vars["bookingType"])
	if !bookingType.IsValid() {
		h.logger.Warn("PATCH /bookings/{type}/{id}/schedule - Invalid booking type: %s", vars["bookingType"])
		handlers.RespondBadRequest(w, msgInvalidBookingType)
		return
	}

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{type}/{id}/schedule - Invalid booking ID: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var body UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PATCH /bookings/{type}/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, body.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	timeFrom, errFrom := types.NewTimeStringFromString(body.TimeFrom)
	timeTo, errTo := types.NewTimeStringFromString(body.TimeTo)
	if errFrom != nil || errTo != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateSchedule.Request{
		UserID:    userID,
		Type:      bookingType,
		BookingID: bookingID,
		Date:      date,
		TimeFrom:  timeFrom,
		TimeTo:    timeTo,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateSchedule.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{type}/{id}/schedule - Booking not found: %s id=%d", bookingType, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateSchedule.ErrCannotReschedule):
			handlers.RespondConflict(w, msgCannotReschedule)

		case errors.Is(err, updateSchedule.ErrSlotConflict):
			h.logger.Warn("PATCH /bookings/{type}/{id}/schedule - Slot conflict: %s id=%d", bookingType, bookingID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, updateSchedule.ErrMalformedWindow):
			handlers.RespondBadRequest(w, msgMalformedWindow)

		case errors.Is(err, updateSchedule.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, updateSchedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{type}/{id}/schedule - Failed to reschedule: %s id=%d, error=%v", bookingType, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{type}/{id}/schedule - Rescheduled: %s id=%d, retracted=%d, assigned=%d",
		bookingType, bookingID, result.RetractedCount, len(result.AssignedStaff))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
