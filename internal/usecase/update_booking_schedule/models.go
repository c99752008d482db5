package update_booking_schedule

import (
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// Статусы пересчёта назначений в ответе
const (
	AssignmentAssigned   = "assigned"
	AssignmentUnassigned = "unassigned"
	AssignmentFailed     = "failed"
)

// Request модель запроса на перенос бронирования
type Request struct {
	UserID    int64
	Type      domain.BookingType
	BookingID int64
	Date      time.Time
	TimeFrom  types.TimeString
	TimeTo    types.TimeString
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID       int64
	Type     string
	Title    string
	Date     time.Time
	TimeFrom types.TimeString
	TimeTo   types.TimeString
	Status   string

	AssignmentStatus string
	RetractedCount   int64
	AssignedStaff    []models.AssignedStaff
}
