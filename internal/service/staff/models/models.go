package models

import "github.com/m04kA/SMC-StaffingService/internal/domain"

// SaveWeeklyAvailabilityRequest запрос на сохранение недельного расписания
// Дни, не указанные в Days, получают окно рабочих часов по умолчанию
type SaveWeeklyAvailabilityRequest struct {
	Days []DayAvailability `json:"days"`
}

// DayAvailability окно на один день недели
// StartTime/EndTime без значения берутся из рабочих часов по умолчанию
type DayAvailability struct {
	Day       string  `json:"day"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Status    *string `json:"status,omitempty"` // available (по умолчанию), unavailable, blocked
}

// WeeklyAvailabilityResponse недельное расписание сотрудника
type WeeklyAvailabilityResponse struct {
	StaffID int64                `json:"staffId"`
	Days    []DayAvailabilityDTO `json:"days"`
}

// DayAvailabilityDTO окно на один день недели в ответе
type DayAvailabilityDTO struct {
	Day       string  `json:"day"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Status    string  `json:"status"`
}

// FromDomainWindows конвертирует окна из domain, упорядочивая по дням недели
func FromDomainWindows(staffID int64, windows []domain.StaffAvailabilityWindow) *WeeklyAvailabilityResponse {
	byDay := make(map[domain.Weekday]domain.StaffAvailabilityWindow, len(windows))
	for _, w := range windows {
		byDay[w.DayOfWeek] = w
	}

	resp := &WeeklyAvailabilityResponse{StaffID: staffID, Days: make([]DayAvailabilityDTO, 0, len(windows))}
	for _, day := range domain.Weekdays {
		w, ok := byDay[day]
		if !ok {
			continue
		}
		dto := DayAvailabilityDTO{Day: day.String(), Status: string(w.Status)}
		if !w.StartTime.IsZero() {
			start := w.StartTime.String()
			dto.StartTime = &start
		}
		if !w.EndTime.IsZero() {
			end := w.EndTime.String()
			dto.EndTime = &end
		}
		resp.Days = append(resp.Days, dto)
	}
	return resp
}

// StaffDTO сотрудник в ответе
type StaffDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
	IsActive bool    `json:"isActive"`
}

// StaffListResponse список сотрудников
type StaffListResponse struct {
	Staff []StaffDTO `json:"staff"`
	Total int        `json:"total"`
}

// FromDomainStaffList конвертирует сотрудников из domain
func FromDomainStaffList(items []*domain.Staff) *StaffListResponse {
	resp := &StaffListResponse{Staff: make([]StaffDTO, 0, len(items)), Total: len(items)}
	for _, s := range items {
		resp.Staff = append(resp.Staff, StaffDTO{
			ID:       s.ID,
			Name:     s.Name,
			Email:    s.Email,
			Phone:    s.Phone,
			Role:     s.Role,
			IsActive: s.IsActive,
		})
	}
	return resp
}
