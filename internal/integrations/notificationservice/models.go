package notificationservice

// StaffAssignedNotification запрос "отправить многим" о назначении на бронирование
type StaffAssignedNotification struct {
	ReservationID int64       `json:"reservation_id"`
	BookingType   string      `json:"booking_type"`
	Date          string      `json:"date"`      // YYYY-MM-DD
	TimeFrom      string      `json:"time_from"` // HH:MM
	TimeTo        string      `json:"time_to"`   // HH:MM
	Recipients    []Recipient `json:"recipients"`
}

// Recipient назначенный сотрудник
type Recipient struct {
	StaffID int64   `json:"staff_id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Role    string  `json:"role"`
}
