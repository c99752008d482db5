package get_booking_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffingService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidBookingType = "некорректный тип бронирования"
)

type Handler struct {
	service AssignmentService
	logger  Logger
}

func NewHandler(service AssignmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingType}/{bookingId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingType := domain.BookingType(vars["bookingType"])
	if !bookingType.IsValid() {
		handlers.RespondBadRequest(w, msgInvalidBookingType)
		return
	}

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("GET /bookings/{type}/{id}/staff - Invalid booking ID: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	staff, err := h.service.GetAssignedStaff(r.Context(), bookingType, bookingID)
	if err != nil {
		if errors.Is(err, assignment.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidBookingID)
			return
		}
		h.logger.Error("GET /bookings/{type}/{id}/staff - Failed to get staff: %s id=%d, error=%v", bookingType, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}
	if staff == nil {
		staff = []models.AssignedStaff{}
	}

	handlers.RespondJSON(w, http.StatusOK, BookingStaffResponse{
		BookingType:   string(bookingType),
		ReservationID: bookingID,
		Staff:         staff,
	})
}
