package create_booking

import (
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// Статусы автоматического назначения персонала в ответе
const (
	AssignmentAssigned   = "assigned"
	AssignmentUnassigned = "unassigned" // подходящих сотрудников нет, нужна ручная доработка
	AssignmentFailed     = "failed"     // бронирование создано, назначение не выполнено
)

// Request модель запроса на создание бронирования мероприятия или записи на услугу
type Request struct {
	UserID    int64              // ID пользователя, создающего бронирование
	Type      domain.BookingType // event_booking или service_booking
	Title     string             // Название мероприятия / услуги
	ServiceID *int64             // ID услуги (только для service_booking)
	Date      time.Time          // Дата бронирования (без времени)
	TimeFrom  types.TimeString   // Время начала
	TimeTo    types.TimeString   // Время окончания
	Status    *string            // Начальный статус (pending по умолчанию)
	Notes     *string            // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	Type      string
	Title     string
	ServiceID *int64
	Date      time.Time
	TimeFrom  types.TimeString
	TimeTo    types.TimeString
	Status    string
	Notes     *string
	CreatedBy int64

	AssignmentStatus string
	AssignedStaff    []models.AssignedStaff

	CreatedAt time.Time
	UpdatedAt time.Time
}
