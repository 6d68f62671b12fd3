package models

import (
	"time"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/types"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
}

// UpdateServiceRequest запрос на обновление услуги
// nil-поля не изменяются
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

// CreateStaffRequest запрос на создание сотрудника
type CreateStaffRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// UpdateStaffRequest запрос на обновление сотрудника
type UpdateStaffRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// AssignServiceRequest запрос на привязку услуги к сотруднику
type AssignServiceRequest struct {
	ServiceID int64 `json:"serviceId"`
}

// ScheduleEntryRequest одна строка расписания сотрудника
type ScheduleEntryRequest struct {
	Weekday   int    `json:"weekday"`   // 0=понедельник .. 6=воскресенье
	OpenTime  string `json:"openTime"`  // "09:00"
	CloseTime string `json:"closeTime"` // "17:00"
	IsWorking bool   `json:"isWorking"`
}

// ReplaceScheduleRequest запрос на полную замену расписания сотрудника
type ReplaceScheduleRequest struct {
	Entries []ScheduleEntryRequest `json:"entries"`
}

// ToDomainSchedules конвертирует запрос в domain модели
func (r *ReplaceScheduleRequest) ToDomainSchedules(staffID int64) ([]*domain.StaffSchedule, error) {
	entries := make([]*domain.StaffSchedule, 0, len(r.Entries))
	for _, e := range r.Entries {
		openTime, err := types.NewTimeStringFromString(e.OpenTime)
		if err != nil {
			return nil, err
		}
		closeTime, err := types.NewTimeStringFromString(e.CloseTime)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &domain.StaffSchedule{
			StaffID:   staffID,
			Weekday:   domain.Weekday(e.Weekday),
			OpenTime:  openTime,
			CloseTime: closeTime,
			IsWorking: e.IsWorking,
		})
	}
	return entries, nil
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
	IsActive        bool     `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// StaffResponse ответ с данными сотрудника
type StaffResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
}

// StaffListResponse ответ со списком сотрудников
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// StaffServiceResponse ответ с привязкой услуги к сотруднику
type StaffServiceResponse struct {
	ID        int64 `json:"id"`
	StaffID   int64 `json:"staffId"`
	ServiceID int64 `json:"serviceId"`
	IsActive  bool  `json:"isActive"`
}

// StaffServiceListResponse ответ со списком привязок
type StaffServiceListResponse struct {
	Services []StaffServiceResponse `json:"services"`
}

// ScheduleEntryResponse одна строка расписания сотрудника
type ScheduleEntryResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsWorking bool   `json:"isWorking"`
}

// ScheduleResponse ответ с расписанием сотрудника
type ScheduleResponse struct {
	Entries []ScheduleEntryResponse `json:"entries"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		if r := FromDomainService(s); r != nil {
			resp.Services = append(resp.Services, *r)
		}
	}
	return resp
}

// FromDomainStaff конвертирует domain модель в DTO
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	if s == nil {
		return nil
	}
	return &StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Email:     s.Email,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainStaffList конвертирует список domain моделей в DTO
func FromDomainStaffList(staff []*domain.Staff) *StaffListResponse {
	resp := &StaffListResponse{Staff: make([]StaffResponse, 0, len(staff))}
	for _, s := range staff {
		if r := FromDomainStaff(s); r != nil {
			resp.Staff = append(resp.Staff, *r)
		}
	}
	return resp
}

// FromDomainStaffService конвертирует привязку услуги в DTO
func FromDomainStaffService(e *domain.StaffService) *StaffServiceResponse {
	if e == nil {
		return nil
	}
	return &StaffServiceResponse{
		ID:        e.ID,
		StaffID:   e.StaffID,
		ServiceID: e.ServiceID,
		IsActive:  e.IsActive,
	}
}

// FromDomainStaffServiceList конвертирует список привязок в DTO
func FromDomainStaffServiceList(edges []*domain.StaffService) *StaffServiceListResponse {
	resp := &StaffServiceListResponse{Services: make([]StaffServiceResponse, 0, len(edges))}
	for _, e := range edges {
		if r := FromDomainStaffService(e); r != nil {
			resp.Services = append(resp.Services, *r)
		}
	}
	return resp
}

// FromDomainSchedules конвертирует расписание в DTO
func FromDomainSchedules(entries []*domain.StaffSchedule) *ScheduleResponse {
	resp := &ScheduleResponse{Entries: make([]ScheduleEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, ScheduleEntryResponse{
			ID:        e.ID,
			StaffID:   e.StaffID,
			Weekday:   int(e.Weekday),
			OpenTime:  e.OpenTime.String(),
			CloseTime: e.CloseTime.String(),
			IsWorking: e.IsWorking,
		})
	}
	return resp
}
