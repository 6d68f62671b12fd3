package models

import (
	"time"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/types"
)

// Request модели

// BusinessHoursEntryRequest часы работы салона на один день недели
type BusinessHoursEntryRequest struct {
	Weekday     int    `json:"weekday"`     // 0=понедельник .. 6=воскресенье
	OpenTime    string `json:"openTime"`    // "09:00"
	CloseTime   string `json:"closeTime"`   // "17:00"
	SlotMinutes int    `json:"slotMinutes"` // Шаг сетки слотов
}

// ReplaceBusinessHoursRequest запрос на полную замену часов работы
type ReplaceBusinessHoursRequest struct {
	Entries []BusinessHoursEntryRequest `json:"entries"`
}

// ToDomainHours конвертирует запрос в domain модели
func (r *ReplaceBusinessHoursRequest) ToDomainHours() ([]*domain.BusinessHours, error) {
	hours := make([]*domain.BusinessHours, 0, len(r.Entries))
	for _, e := range r.Entries {
		openTime, err := types.NewTimeStringFromString(e.OpenTime)
		if err != nil {
			return nil, err
		}
		closeTime, err := types.NewTimeStringFromString(e.CloseTime)
		if err != nil {
			return nil, err
		}
		slotMinutes := e.SlotMinutes
		if slotMinutes == 0 {
			slotMinutes = domain.DefaultSlotMinutes
		}
		hours = append(hours, &domain.BusinessHours{
			Weekday:     domain.Weekday(e.Weekday),
			OpenTime:    openTime,
			CloseTime:   closeTime,
			SlotMinutes: slotMinutes,
		})
	}
	return hours, nil
}

// HolidayEntryRequest один выходной день
type HolidayEntryRequest struct {
	Date   string  `json:"date"` // "2026-01-01"
	Reason *string `json:"reason,omitempty"`
}

// ReplaceHolidaysRequest запрос на полную замену выходных дней
type ReplaceHolidaysRequest struct {
	Entries []HolidayEntryRequest `json:"entries"`
}

// ToDomainHolidays конвертирует запрос в domain модели
func (r *ReplaceHolidaysRequest) ToDomainHolidays() ([]*domain.Holiday, error) {
	holidays := make([]*domain.Holiday, 0, len(r.Entries))
	for _, e := range r.Entries {
		date, err := time.Parse(domain.DateFormat, e.Date)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, &domain.Holiday{
			Date:   date,
			Reason: e.Reason,
		})
	}
	return holidays, nil
}

// Response модели

// BusinessHoursEntryResponse часы работы на один день недели
type BusinessHoursEntryResponse struct {
	ID          int64  `json:"id"`
	Weekday     int    `json:"weekday"`
	OpenTime    string `json:"openTime"`
	CloseTime   string `json:"closeTime"`
	SlotMinutes int    `json:"slotMinutes"`
}

// BusinessHoursResponse ответ с часами работы салона
type BusinessHoursResponse struct {
	Entries []BusinessHoursEntryResponse `json:"entries"`
}

// HolidayEntryResponse один выходной день
type HolidayEntryResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// HolidaysResponse ответ со списком выходных дней
type HolidaysResponse struct {
	Holidays []HolidayEntryResponse `json:"holidays"`
}

// Методы конвертации

// FromDomainHours конвертирует часы работы в DTO
func FromDomainHours(hours []*domain.BusinessHours) *BusinessHoursResponse {
	resp := &BusinessHoursResponse{Entries: make([]BusinessHoursEntryResponse, 0, len(hours))}
	for _, h := range hours {
		resp.Entries = append(resp.Entries, BusinessHoursEntryResponse{
			ID:          h.ID,
			Weekday:     int(h.Weekday),
			OpenTime:    h.OpenTime.String(),
			CloseTime:   h.CloseTime.String(),
			SlotMinutes: h.SlotMinutes,
		})
	}
	return resp
}

// FromDomainHolidays конвертирует выходные дни в DTO
func FromDomainHolidays(holidays []*domain.Holiday) *HolidaysResponse {
	resp := &HolidaysResponse{Holidays: make([]HolidayEntryResponse, 0, len(holidays))}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, HolidayEntryResponse{
			ID:     h.ID,
			Date:   h.Date.Format(domain.DateFormat),
			Reason: h.Reason,
		})
	}
	return resp
}
