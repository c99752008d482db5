package get_booking_staff

import "github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"

// BookingStaffResponse назначенный на бронирование персонал
type BookingStaffResponse struct {
	BookingType   string                 `json:"bookingType"`
	ReservationID int64                  `json:"reservationId"`
	Staff         []models.AssignedStaff `json:"staff"`
}
